package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/payments"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (*OrderService, *models.User, *models.User, *models.Meal) {
	t.Helper()
	st := newTestStore(t)
	chef := seedUser(t, st, "chef@example.com", models.RoleChef, models.AccountActive)
	customer := seedUser(t, st, "cust@example.com", models.RoleCustomer, models.AccountActive)
	meal := seedMeal(t, st, chef, "12.99")
	svc := &OrderService{
		Store:    st,
		Auth:     &lifecycle.Authorizer{},
		Payments: payments.StaticVerifier{"tok_ok": true},
	}
	return svc, customer, chef, meal
}

func place(t *testing.T, svc *OrderService, customer *models.User, meal *models.Meal, qty int) *models.Order {
	t.Helper()
	total := meal.Price.Mul(decimal.NewFromInt(int64(qty)))
	order, err := svc.Place(actorFor(customer), PlaceOrderInput{
		MealID:          meal.ID,
		Quantity:        qty,
		DeliveryAddress: "1 Main St",
		TotalPrice:      total,
	})
	require.NoError(t, err)
	return order
}

// Scenario: customer orders 2×12.99, chef accepts then delivers, and the
// terminal order rejects any further transition.
func TestOrderHappyPath(t *testing.T) {
	svc, customer, chef, meal := newOrderService(t)

	order := place(t, svc, customer, meal, 2)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.True(t, decimal.RequireFromString("25.98").Equal(order.TotalPrice), "got %s", order.TotalPrice)

	order, err := svc.Advance(actorFor(chef), order.ID, models.OrderAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderAccepted, order.Status)

	order, err = svc.Advance(actorFor(chef), order.ID, models.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, order.Status)
	assert.NotNil(t, order.DeliveredAt)

	_, err = svc.Advance(actorFor(chef), order.ID, models.OrderCancelled)
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindTerminalStateViolation, lifecycle.KindOf(err))
}

func TestPlaceRejectsTamperedTotal(t *testing.T) {
	svc, customer, _, meal := newOrderService(t)

	_, err := svc.Place(actorFor(customer), PlaceOrderInput{
		MealID:          meal.ID,
		Quantity:        2,
		DeliveryAddress: "1 Main St",
		TotalPrice:      decimal.RequireFromString("0.02"),
	})
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindValidation, lifecycle.KindOf(err))
}

func TestPlaceRejectsUnavailableMeal(t *testing.T) {
	svc, customer, _, meal := newOrderService(t)
	meal.IsAvailable = false
	require.NoError(t, svc.Store.SaveMeal(meal))

	_, err := svc.Place(actorFor(customer), PlaceOrderInput{
		MealID:          meal.ID,
		Quantity:        1,
		DeliveryAddress: "1 Main St",
		TotalPrice:      meal.Price,
	})
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindValidation, lifecycle.KindOf(err))
}

// Total price is a snapshot; changing the meal's price later must not touch it.
func TestTotalPriceImmutable(t *testing.T) {
	svc, customer, _, meal := newOrderService(t)
	order := place(t, svc, customer, meal, 2)

	meal.Price = decimal.RequireFromString("99.00")
	require.NoError(t, svc.Store.SaveMeal(meal))

	got, err := svc.Get(actorFor(customer), order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.98").Equal(got.TotalPrice))
	assert.True(t, decimal.RequireFromString("12.99").Equal(got.UnitPrice))
}

// Scenario: a fraud-flagged account cannot create orders but still reads its
// pre-existing ones.
func TestFraudAccountBlockedFromOrdering(t *testing.T) {
	svc, customer, _, meal := newOrderService(t)
	existing := place(t, svc, customer, meal, 1)

	require.NoError(t, svc.Store.SetUserStatus(customer.ID, models.AccountFraud))
	customer.Status = models.AccountFraud

	_, err := svc.Place(actorFor(customer), PlaceOrderInput{
		MealID:          meal.ID,
		Quantity:        1,
		DeliveryAddress: "1 Main St",
		TotalPrice:      meal.Price,
	})
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindForbidden, lifecycle.KindOf(err))

	got, err := svc.Get(actorFor(customer), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
}

func TestThirdPartyCannotReadOrMutate(t *testing.T) {
	svc, customer, chef, meal := newOrderService(t)
	order := place(t, svc, customer, meal, 1)

	stranger := seedUser(t, svc.Store, "other@example.com", models.RoleCustomer, models.AccountActive)

	_, err := svc.Get(actorFor(stranger), order.ID)
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindForbidden, lifecycle.KindOf(err))

	_, err = svc.Advance(actorFor(stranger), order.ID, models.OrderCancelled)
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindForbidden, lifecycle.KindOf(err))

	// both owners can read
	_, err = svc.Get(actorFor(customer), order.ID)
	require.NoError(t, err)
	_, err = svc.Get(actorFor(chef), order.ID)
	require.NoError(t, err)
}

func TestCustomerCannotAcceptOwnOrder(t *testing.T) {
	svc, customer, _, meal := newOrderService(t)
	order := place(t, svc, customer, meal, 1)

	_, err := svc.Advance(actorFor(customer), order.ID, models.OrderAccepted)
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindInvalidTransition, lifecycle.KindOf(err))
}

// Two concurrent accepts on the same pending order: exactly one wins, the
// other observes the conflict.
func TestConcurrentAcceptRace(t *testing.T) {
	svc, customer, chef, meal := newOrderService(t)
	order := place(t, svc, customer, meal, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Advance(actorFor(chef), order.ID, models.OrderAccepted)
		}(i)
	}
	wg.Wait()

	var okCount, conflictCount int
	for _, err := range errs {
		if err == nil {
			okCount++
			continue
		}
		switch lifecycle.KindOf(err) {
		case lifecycle.KindConcurrentModification, lifecycle.KindInvalidTransition:
			conflictCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactly one accept must win")
	assert.Equal(t, 1, conflictCount)

	got, err := svc.Store.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderAccepted, got.Status)
}

func TestListAllAdminOnly(t *testing.T) {
	svc, customer, chef, meal := newOrderService(t)
	admin := seedUser(t, svc.Store, "admin@example.com", models.RoleAdmin, models.AccountActive)
	place(t, svc, customer, meal, 1)

	_, err := svc.ListAll(actorFor(chef), "")
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindForbidden, lifecycle.KindOf(err))

	orders, err := svc.ListAll(actorFor(admin), "")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = svc.ListAll(actorFor(admin), string(models.OrderDelivered))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMarkPaidRequiresVerifiedToken(t *testing.T) {
	svc, customer, _, meal := newOrderService(t)
	order := place(t, svc, customer, meal, 1)
	ctx := context.Background()

	_, err := svc.MarkPaid(ctx, actorFor(customer), order.ID, "tok_bogus")
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindPaymentNotVerified, lifecycle.KindOf(err))

	paid, err := svc.MarkPaid(ctx, actorFor(customer), order.ID, "tok_ok")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, paid.PaymentStatus)

	// paying twice is off the table
	_, err = svc.MarkPaid(ctx, actorFor(customer), order.ID, "tok_ok")
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindInvalidTransition, lifecycle.KindOf(err))
}

func TestChefCannotMarkPaid(t *testing.T) {
	svc, customer, chef, meal := newOrderService(t)
	order := place(t, svc, customer, meal, 1)

	_, err := svc.MarkPaid(context.Background(), actorFor(chef), order.ID, "tok_ok")
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindForbidden, lifecycle.KindOf(err))
}

func TestRefundFlow(t *testing.T) {
	svc, customer, chef, meal := newOrderService(t)
	admin := seedUser(t, svc.Store, "admin@example.com", models.RoleAdmin, models.AccountActive)
	order := place(t, svc, customer, meal, 1)

	_, err := svc.MarkPaid(context.Background(), actorFor(customer), order.ID, "tok_ok")
	require.NoError(t, err)

	// only an admin refunds
	_, err = svc.Refund(actorFor(chef), order.ID)
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindForbidden, lifecycle.KindOf(err))

	refunded, err := svc.Refund(actorFor(admin), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, refunded.PaymentStatus)

	_, err = svc.Refund(actorFor(admin), order.ID)
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindInvalidTransition, lifecycle.KindOf(err))
}

func TestRefundWindowOnDeliveredOrder(t *testing.T) {
	svc, customer, chef, meal := newOrderService(t)
	svc.RefundGrace = time.Nanosecond
	admin := seedUser(t, svc.Store, "admin@example.com", models.RoleAdmin, models.AccountActive)

	order := place(t, svc, customer, meal, 1)
	_, err := svc.MarkPaid(context.Background(), actorFor(customer), order.ID, "tok_ok")
	require.NoError(t, err)
	_, err = svc.Advance(actorFor(chef), order.ID, models.OrderAccepted)
	require.NoError(t, err)
	_, err = svc.Advance(actorFor(chef), order.ID, models.OrderDelivered)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.Refund(actorFor(admin), order.ID)
	require.Error(t, err)
	assert.Equal(t, lifecycle.KindInvalidTransition, lifecycle.KindOf(err))
}
