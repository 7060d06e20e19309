package store

import (
	"errors"
	"strings"
	"time"

	"homechef-api/lifecycle"
	"homechef-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the persistence collaborator. Status changes go through
// compare-and-swap writes so that concurrent conflicting transitions on the
// same entity serialize to exactly one winner.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	if !strings.Contains(path, "?") {
		// serialize concurrent writers instead of failing with SQLITE_BUSY
		path += "?_pragma=busy_timeout(5000)"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Order{},
		&models.RoleChangeRequest{},
		&models.Review{},
		&models.Favorite{},
	); err != nil {
		return nil, err
	}
	// partial indexes are not expressible as gorm tags; this one backs the
	// one-pending-request-per-(account, role) rule against racing submits
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_requests_one_pending
		ON role_change_requests (user_id, requested_role) WHERE status = 'pending'`).Error; err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// IsUniqueViolation reports whether err is a sqlite unique-constraint failure.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// ── Users ──────────────────────────────────────────────────────────

func (s *Store) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, "user")
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFoundOr(err, "user")
	}
	return &u, nil
}

func (s *Store) ListUsers(role string) ([]models.User, error) {
	var users []models.User
	q := s.db.Order("created_at desc")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	return users, q.Find(&users).Error
}

func (s *Store) SetUserStatus(id uint, status models.AccountStatus) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return lifecycle.ErrNotFound("user")
	}
	return nil
}

func (s *Store) CountUsers() (int64, error) {
	var n int64
	return n, s.db.Model(&models.User{}).Count(&n).Error
}

// ── Meals ──────────────────────────────────────────────────────────

func (s *Store) CreateMeal(m *models.Meal) error {
	return s.db.Create(m).Error
}

func (s *Store) GetMeal(id uint) (*models.Meal, error) {
	var m models.Meal
	if err := s.db.First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, "meal")
	}
	return &m, nil
}

func (s *Store) SaveMeal(m *models.Meal) error {
	return s.db.Save(m).Error
}

func (s *Store) DeleteMeal(id uint) error {
	res := s.db.Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return lifecycle.ErrNotFound("meal")
	}
	return nil
}

// ListMeals returns available meals only; chef/admin views use ListMealsByOwner.
func (s *Store) ListMeals() ([]models.Meal, error) {
	var meals []models.Meal
	return meals, s.db.Where("is_available = ?", true).Order("created_at desc").Find(&meals).Error
}

func (s *Store) ListMealsByOwner(ownerID uint) ([]models.Meal, error) {
	var meals []models.Meal
	return meals, s.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&meals).Error
}

func (s *Store) SetMealRating(id uint, rating float64) error {
	return s.db.Model(&models.Meal{}).Where("id = ?", id).Update("rating", rating).Error
}

func (s *Store) CountMeals() (int64, error) {
	var n int64
	return n, s.db.Model(&models.Meal{}).Count(&n).Error
}

// ── Orders ─────────────────────────────────────────────────────────

func (s *Store) CreateOrder(o *models.Order) error {
	return s.db.Create(o).Error
}

func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var o models.Order
	if err := s.db.Preload("Meal").First(&o, id).Error; err != nil {
		return nil, notFoundOr(err, "order")
	}
	return &o, nil
}

func (s *Store) ListOrdersByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	return orders, s.db.Preload("Meal").Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error
}

func (s *Store) ListOrdersByChef(chefID uint) ([]models.Order, error) {
	var orders []models.Order
	return orders, s.db.Preload("Meal").Preload("Customer").Where("chef_id = ?", chefID).
		Order("created_at desc").Find(&orders).Error
}

func (s *Store) ListOrders(status string) ([]models.Order, error) {
	var orders []models.Order
	q := s.db.Preload("Meal").Preload("Customer").Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return orders, q.Find(&orders).Error
}

// SwapOrderStatus writes the new status conditionally on the status being
// unchanged since read. A failed guard is surfaced as ConcurrentModification
// with the now-current state; the caller may re-read and retry.
func (s *Store) SwapOrderStatus(id uint, expected, next models.OrderStatus, extra map[string]any) error {
	fields := map[string]any{"status": next}
	for k, v := range extra {
		fields[k] = v
	}
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.orderSwapConflict(id)
	}
	return nil
}

// SwapPaymentStatus is the compare-and-swap for the payment axis.
func (s *Store) SwapPaymentStatus(id uint, expected, next models.PaymentStatus) error {
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", id, expected).
		Update("payment_status", next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.orderSwapConflict(id)
	}
	return nil
}

func (s *Store) orderSwapConflict(id uint) error {
	var o models.Order
	if err := s.db.First(&o, id).Error; err != nil {
		return notFoundOr(err, "order")
	}
	return lifecycle.ErrConcurrentModification(string(o.Status))
}

// HasDeliveredOrder reports whether the user has at least one delivered order
// for the meal (the review precondition).
func (s *Store) HasDeliveredOrder(userID, mealID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.Order{}).
		Where("customer_id = ? AND meal_id = ? AND status = ?", userID, mealID, models.OrderDelivered).
		Count(&n).Error
	return n > 0, err
}

func (s *Store) OrderStatusCounts() (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := s.db.Model(&models.Order{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}

// MonthlyPaidTotals aggregates paid order totals by calendar month (YYYY-MM).
func (s *Store) MonthlyPaidTotals() (map[string]decimal.Decimal, error) {
	var orders []models.Order
	if err := s.db.Where("payment_status = ?", models.PaymentPaid).Find(&orders).Error; err != nil {
		return nil, err
	}
	totals := map[string]decimal.Decimal{}
	for _, o := range orders {
		month := o.CreatedAt.Format("2006-01")
		totals[month] = totals[month].Add(o.TotalPrice)
	}
	return totals, nil
}

func (s *Store) CountRefundedOrders() (int64, error) {
	var n int64
	return n, s.db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentRefunded).Count(&n).Error
}

// ── Role-change requests ───────────────────────────────────────────

func (s *Store) CreateRequest(r *models.RoleChangeRequest) error {
	if err := s.db.Create(r).Error; err != nil {
		if IsUniqueViolation(err) {
			return lifecycle.ErrDuplicateRequest()
		}
		return err
	}
	return nil
}

func (s *Store) GetRequest(id uint) (*models.RoleChangeRequest, error) {
	var r models.RoleChangeRequest
	if err := s.db.Preload("User").First(&r, id).Error; err != nil {
		return nil, notFoundOr(err, "request")
	}
	return &r, nil
}

func (s *Store) ListRequests(status string) ([]models.RoleChangeRequest, error) {
	var reqs []models.RoleChangeRequest
	q := s.db.Preload("User").Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return reqs, q.Find(&reqs).Error
}

func (s *Store) ListRequestsByUser(userID uint) ([]models.RoleChangeRequest, error) {
	var reqs []models.RoleChangeRequest
	return reqs, s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&reqs).Error
}

func (s *Store) HasPendingRequest(userID uint, role models.Role) (bool, error) {
	var n int64
	err := s.db.Model(&models.RoleChangeRequest{}).
		Where("user_id = ? AND requested_role = ? AND status = ?", userID, role, models.RequestPending).
		Count(&n).Error
	return n > 0, err
}

// ResolveRequest flips a pending request to its decision and, for approvals,
// applies the role change to the user in the same transaction. The request
// guard makes a second concurrent resolution lose cleanly.
func (s *Store) ResolveRequest(req *models.RoleChangeRequest, decision models.RequestStatus, reviewerID uint, newRole models.Role, chefID *string) error {
	now := time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RoleChangeRequest{}).
			Where("id = ? AND status = ?", req.ID, models.RequestPending).
			Updates(map[string]any{
				"status":      decision,
				"reviewed_by": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var cur models.RoleChangeRequest
			if err := tx.First(&cur, req.ID).Error; err != nil {
				return notFoundOr(err, "request")
			}
			return lifecycle.ErrConcurrentModification(string(cur.Status))
		}
		if decision != models.RequestApproved {
			return nil
		}
		// role = chef iff a chef identifier is present: promotions away from
		// chef clear any identifier the account held before
		fields := map[string]any{"role": newRole}
		if chefID != nil {
			fields["chef_id"] = *chefID
		} else {
			fields["chef_id"] = nil
		}
		return tx.Model(&models.User{}).Where("id = ?", req.UserID).Updates(fields).Error
	})
}

// ── Reviews ────────────────────────────────────────────────────────

func (s *Store) CreateReview(r *models.Review) error {
	return s.db.Create(r).Error
}

func (s *Store) GetReview(id uint) (*models.Review, error) {
	var r models.Review
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, notFoundOr(err, "review")
	}
	return &r, nil
}

func (s *Store) SaveReview(r *models.Review) error {
	return s.db.Save(r).Error
}

func (s *Store) DeleteReview(id uint) error {
	res := s.db.Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return lifecycle.ErrNotFound("review")
	}
	return nil
}

func (s *Store) ListReviewsByMeal(mealID uint) ([]models.Review, error) {
	var reviews []models.Review
	return reviews, s.db.Preload("Reviewer").Where("meal_id = ?", mealID).
		Order("created_at desc").Find(&reviews).Error
}

func (s *Store) ListReviewsByReviewer(reviewerID uint) ([]models.Review, error) {
	var reviews []models.Review
	return reviews, s.db.Preload("Meal").Where("reviewer_id = ?", reviewerID).
		Order("created_at desc").Find(&reviews).Error
}

// MealRatingAverage returns the mean review rating, or 0 with no reviews.
func (s *Store) MealRatingAverage(mealID uint) (float64, error) {
	var avg *float64
	err := s.db.Model(&models.Review{}).
		Where("meal_id = ?", mealID).
		Select("avg(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// ── Favorites ──────────────────────────────────────────────────────

func (s *Store) CreateFavorite(f *models.Favorite) error {
	return s.db.Create(f).Error
}

func (s *Store) GetFavorite(id uint) (*models.Favorite, error) {
	var f models.Favorite
	if err := s.db.First(&f, id).Error; err != nil {
		return nil, notFoundOr(err, "favorite")
	}
	return &f, nil
}

func (s *Store) DeleteFavorite(id uint) error {
	res := s.db.Delete(&models.Favorite{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return lifecycle.ErrNotFound("favorite")
	}
	return nil
}

func (s *Store) ListFavorites(userID uint) ([]models.Favorite, error) {
	var favs []models.Favorite
	return favs, s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&favs).Error
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return lifecycle.ErrNotFound(what)
	}
	return err
}
