package services

import (
	"context"
	"time"

	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/payments"
	"homechef-api/store"

	"github.com/shopspring/decimal"
)

// OrderService orchestrates the order lifecycle: load a snapshot, authorize,
// consult the transition table, then write conditionally on the snapshot.
type OrderService struct {
	Store       *store.Store
	Auth        *lifecycle.Authorizer
	Payments    payments.Verifier
	RefundGrace time.Duration // 0 = no time limit on refunds
}

type PlaceOrderInput struct {
	MealID          uint            `json:"meal_id" binding:"required"`
	Quantity        int             `json:"quantity" binding:"required,min=1"`
	DeliveryAddress string          `json:"delivery_address" binding:"required"`
	TotalPrice      decimal.Decimal `json:"total_price"` // client-computed, re-checked server-side
}

// Place creates a new pending order against an available meal. The total is
// recomputed from the meal's current price and must match the client-supplied
// total, so a tampered client cannot set its own price.
func (s *OrderService) Place(actor lifecycle.Actor, in PlaceOrderInput) (*models.Order, error) {
	if err := s.Auth.Authorize(actor, lifecycle.ActionPlaceOrder, nil); err != nil {
		return nil, err
	}

	meal, err := s.Store.GetMeal(in.MealID)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if in.Quantity < 1 {
		fields["quantity"] = "must be at least 1"
	}
	if !meal.IsAvailable {
		fields["meal_id"] = "meal is not available"
	}
	total := meal.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
	if !total.Equal(in.TotalPrice) {
		fields["total_price"] = "does not match quantity × unit price"
	}
	if len(fields) > 0 {
		return nil, lifecycle.ErrValidation(fields)
	}

	order := models.Order{
		MealID:          meal.ID,
		ChefID:          meal.OwnerID,
		CustomerID:      actor.ID,
		MealName:        meal.Name,
		Quantity:        in.Quantity,
		UnitPrice:       meal.Price,
		TotalPrice:      total,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentPending,
		DeliveryAddress: in.DeliveryAddress,
	}
	if err := s.Store.CreateOrder(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Advance moves an order to the requested status. The transition table gates
// which party may perform which step; the conditional write guarantees at
// most one winner under concurrent requests.
func (s *OrderService) Advance(actor lifecycle.Actor, orderID uint, target models.OrderStatus) (*models.Order, error) {
	order, err := s.Store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionUpdate, order); err != nil {
		return nil, err
	}
	party := lifecycle.PartyOf(actor, order)
	if err := lifecycle.CanTransition(order.Status, target, party); err != nil {
		return nil, err
	}

	var extra map[string]any
	if target == models.OrderDelivered {
		extra = map[string]any{"delivered_at": time.Now()}
	}
	if err := s.Store.SwapOrderStatus(order.ID, order.Status, target, extra); err != nil {
		return nil, err
	}
	return s.Store.GetOrder(order.ID)
}

// MarkPaid flips the payment axis to paid after the provider confirms the
// token. A direct client request without a verified confirmation never moves
// money.
func (s *OrderService) MarkPaid(ctx context.Context, actor lifecycle.Actor, orderID uint, token string) (*models.Order, error) {
	order, err := s.Store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionUpdate, order); err != nil {
		return nil, err
	}
	verified := false
	if token != "" {
		verified, err = s.Payments.Verify(ctx, token)
		if err != nil {
			return nil, err
		}
	}
	party := lifecycle.PartyOf(actor, order)
	if err := lifecycle.CanMarkPaid(order.PaymentStatus, party, verified); err != nil {
		return nil, err
	}
	if err := s.Store.SwapPaymentStatus(order.ID, models.PaymentPending, models.PaymentPaid); err != nil {
		return nil, err
	}
	return s.Store.GetOrder(order.ID)
}

// Refund flips paid→refunded. Admin only; a delivered order stops being
// refundable once the configured grace window has elapsed.
func (s *OrderService) Refund(actor lifecycle.Actor, orderID uint) (*models.Order, error) {
	order, err := s.Store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionUpdate, order); err != nil {
		return nil, err
	}
	party := lifecycle.PartyOf(actor, order)
	if err := lifecycle.CanRefund(order, party, s.RefundGrace, time.Now()); err != nil {
		return nil, err
	}
	if err := s.Store.SwapPaymentStatus(order.ID, models.PaymentPaid, models.PaymentRefunded); err != nil {
		return nil, err
	}
	return s.Store.GetOrder(order.ID)
}

// Get returns one order to either of its owners or an admin.
func (s *OrderService) Get(actor lifecycle.Actor, orderID uint) (*models.Order, error) {
	order, err := s.Store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionRead, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListMine returns the actor's orders as a customer.
func (s *OrderService) ListMine(actor lifecycle.Actor) ([]models.Order, error) {
	return s.Store.ListOrdersByCustomer(actor.ID)
}

// ListIncoming returns orders placed against the actor's meals (chef view).
func (s *OrderService) ListIncoming(actor lifecycle.Actor) ([]models.Order, error) {
	return s.Store.ListOrdersByChef(actor.ID)
}

// ListAll returns every order, optionally filtered by status. Admin only.
func (s *OrderService) ListAll(actor lifecycle.Actor, status string) ([]models.Order, error) {
	if actor.Role != models.RoleAdmin {
		return nil, lifecycle.ErrForbidden()
	}
	return s.Store.ListOrders(status)
}
