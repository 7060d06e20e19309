package lifecycle

import (
	"testing"
	"time"

	"homechef-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOrderStatuses = []models.OrderStatus{
	models.OrderPending, models.OrderAccepted, models.OrderDelivered, models.OrderCancelled,
}

var allParties = []Party{PartyCustomer, PartyChef, PartyAdmin, PartyNone}

func TestTransitionCompleteness(t *testing.T) {
	allowed := map[transitionKey]bool{}
	for _, tr := range GetAllTransitions() {
		allowed[transitionKey{tr.From, tr.To, tr.Party}] = true
	}

	for _, from := range allOrderStatuses {
		for _, to := range allOrderStatuses {
			for _, p := range allParties {
				err := CanTransition(from, to, p)
				if allowed[transitionKey{from, to, p}] {
					assert.Nil(t, err, "%s→%s by %s should be allowed", from, to, p)
					continue
				}
				require.NotNil(t, err, "%s→%s by %s should be rejected", from, to, p)
				assert.True(t, IsInvalidTransition(err), "%s→%s by %s: got kind %s", from, to, p, err.Kind)
			}
		}
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, from := range []models.OrderStatus{models.OrderDelivered, models.OrderCancelled} {
		for _, to := range allOrderStatuses {
			for _, p := range allParties {
				err := CanTransition(from, to, p)
				require.NotNil(t, err)
				assert.Equal(t, KindTerminalStateViolation, err.Kind)
				assert.Equal(t, string(from), err.CurrentState)
			}
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderAccepted, models.OrderCancelled},
		ValidTransitionsFrom(models.OrderPending))
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderCancelled, models.OrderDelivered},
		ValidTransitionsFrom(models.OrderAccepted))
	assert.Empty(t, ValidTransitionsFrom(models.OrderDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.OrderCancelled))
}

func TestCustomerCannotAcceptOrDeliver(t *testing.T) {
	err := CanTransition(models.OrderPending, models.OrderAccepted, PartyCustomer)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidTransition, err.Kind)

	err = CanTransition(models.OrderAccepted, models.OrderDelivered, PartyCustomer)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidTransition, err.Kind)

	// a customer can no longer cancel once the chef accepted
	err = CanTransition(models.OrderAccepted, models.OrderCancelled, PartyCustomer)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidTransition, err.Kind)
}

func TestCanMarkPaid(t *testing.T) {
	assert.Nil(t, CanMarkPaid(models.PaymentPending, PartyCustomer, true))
	assert.Nil(t, CanMarkPaid(models.PaymentPending, PartyAdmin, true))

	err := CanMarkPaid(models.PaymentPending, PartyCustomer, false)
	require.NotNil(t, err)
	assert.Equal(t, KindPaymentNotVerified, err.Kind)

	err = CanMarkPaid(models.PaymentPaid, PartyCustomer, true)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidTransition, err.Kind)

	err = CanMarkPaid(models.PaymentPending, PartyChef, true)
	require.NotNil(t, err)
	assert.Equal(t, KindForbidden, err.Kind)
}

func TestCanRefund(t *testing.T) {
	now := time.Now()
	paid := &models.Order{Status: models.OrderAccepted, PaymentStatus: models.PaymentPaid}

	assert.Nil(t, CanRefund(paid, PartyAdmin, 0, now))

	err := CanRefund(paid, PartyCustomer, 0, now)
	require.NotNil(t, err)
	assert.Equal(t, KindForbidden, err.Kind)

	unpaid := &models.Order{Status: models.OrderAccepted, PaymentStatus: models.PaymentPending}
	err = CanRefund(unpaid, PartyAdmin, 0, now)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidTransition, err.Kind)
}

func TestRefundGraceWindow(t *testing.T) {
	deliveredAt := time.Now().Add(-48 * time.Hour)
	order := &models.Order{
		Status:        models.OrderDelivered,
		PaymentStatus: models.PaymentPaid,
		DeliveredAt:   &deliveredAt,
	}

	// zero grace means no time limit
	assert.Nil(t, CanRefund(order, PartyAdmin, 0, time.Now()))

	// within the window
	assert.Nil(t, CanRefund(order, PartyAdmin, 72*time.Hour, time.Now()))

	// window elapsed
	err := CanRefund(order, PartyAdmin, 24*time.Hour, time.Now())
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidTransition, err.Kind)
}
