package lifecycle

import (
	"time"

	"homechef-api/models"
)

// Transition defines a valid order state change and which party may perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Party Party
}

// orderTransitions is the authoritative state machine definition
var orderTransitions = []Transition{
	// Chef accepts a pending order
	{From: models.OrderPending, To: models.OrderAccepted, Party: PartyChef},
	{From: models.OrderPending, To: models.OrderAccepted, Party: PartyAdmin},
	// Customer, chef or admin can cancel a pending order
	{From: models.OrderPending, To: models.OrderCancelled, Party: PartyCustomer},
	{From: models.OrderPending, To: models.OrderCancelled, Party: PartyChef},
	{From: models.OrderPending, To: models.OrderCancelled, Party: PartyAdmin},
	// Only chef or admin can cancel once accepted
	{From: models.OrderAccepted, To: models.OrderCancelled, Party: PartyChef},
	{From: models.OrderAccepted, To: models.OrderCancelled, Party: PartyAdmin},
	// Chef delivers an accepted order
	{From: models.OrderAccepted, To: models.OrderDelivered, Party: PartyChef},
	{From: models.OrderAccepted, To: models.OrderDelivered, Party: PartyAdmin},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Party Party
}

// Build a lookup map for O(1) validation
var orderTransitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range orderTransitions {
		m[transitionKey{t.From, t.To, t.Party}] = true
	}
	return m
}()

// IsTerminalOrderStatus reports whether no further transition is defined.
func IsTerminalOrderStatus(s models.OrderStatus) bool {
	return s == models.OrderDelivered || s == models.OrderCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range orderTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether the given party may move an order from one
// state to another. Terminal-state attempts fail regardless of party.
func CanTransition(from, to models.OrderStatus, party Party) *Error {
	if IsTerminalOrderStatus(from) {
		return ErrTerminalState(string(from))
	}
	if orderTransitionMap[transitionKey{From: from, To: to, Party: party}] {
		return nil
	}
	return ErrInvalidTransition(string(from), string(to))
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return orderTransitions
}

// CanMarkPaid gates the payment axis pending→paid step. Only a verified
// provider confirmation moves money, and only the paying customer (or an
// admin) may present one.
func CanMarkPaid(current models.PaymentStatus, party Party, verified bool) *Error {
	if party != PartyCustomer && party != PartyAdmin {
		return ErrForbidden()
	}
	if current != models.PaymentPending {
		return ErrInvalidTransition(string(current), string(models.PaymentPaid))
	}
	if !verified {
		return ErrPaymentNotVerified()
	}
	return nil
}

// CanRefund gates paid→refunded. Admin only, independent of order status,
// except that a delivered order becomes non-refundable once the grace window
// has elapsed. A zero grace window means no time limit.
func CanRefund(o *models.Order, party Party, grace time.Duration, now time.Time) *Error {
	if party != PartyAdmin {
		return ErrForbidden()
	}
	if o.PaymentStatus != models.PaymentPaid {
		return ErrInvalidTransition(string(o.PaymentStatus), string(models.PaymentRefunded))
	}
	if grace > 0 && o.Status == models.OrderDelivered && o.DeliveredAt != nil {
		if now.Sub(*o.DeliveredAt) > grace {
			return ErrInvalidTransition(string(o.PaymentStatus), string(models.PaymentRefunded))
		}
	}
	return nil
}
