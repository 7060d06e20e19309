package lifecycle

import "homechef-api/models"

// Authorizer is the single authorization predicate consulted before every
// mutation and every owner-scoped read. Rules are evaluated in order; the
// first match wins.
type Authorizer struct {
	// AllowAdminOrders relaxes the rule that an admin does not place orders.
	AllowAdminOrders bool
}

// Authorize returns nil to allow, or a *Error (Forbidden) to deny.
// target may be nil for creation actions that have no existing resource.
//
// Note: for dual-owned resources this grants party-level access only; which
// party may perform which status change is gated by the transition tables.
func (a *Authorizer) Authorize(actor Actor, action Action, target any) *Error {
	if action == ActionPlaceOrder {
		return a.authorizeOrderCreation(actor)
	}

	if actor.Role == models.RoleAdmin {
		return nil
	}

	switch t := target.(type) {
	case DualOwned:
		if actor.ID == t.CustomerAccountID() || actor.ID == t.ChefAccountID() {
			return nil
		}
	case Owned:
		if actor.ID == t.OwnerAccountID() {
			return nil
		}
	}
	return ErrForbidden()
}

// authorizeOrderCreation: admins do not place orders (configurable), and a
// fraud-flagged account may not create orders even for itself. Existing
// resources stay readable regardless.
func (a *Authorizer) authorizeOrderCreation(actor Actor) *Error {
	if actor.Role == models.RoleAdmin {
		if a.AllowAdminOrders {
			return nil
		}
		return ErrForbidden()
	}
	if actor.Status == models.AccountFraud {
		return ErrForbidden()
	}
	if actor.Role != models.RoleCustomer {
		return ErrForbidden()
	}
	return nil
}
