package lifecycle

import "homechef-api/models"

// Actor is the authenticated account behind a request. It is always passed
// explicitly; nothing in this package reads ambient state.
type Actor struct {
	ID     uint
	Email  string
	Role   models.Role
	Status models.AccountStatus
}

// Action names what the actor wants to do with the target.
type Action string

const (
	ActionRead       Action = "read"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionPlaceOrder Action = "place_order"
)

// Owned is a resource with a single owning account.
type Owned interface {
	OwnerAccountID() uint
}

// DualOwned is a resource owned jointly by a customer and a chef (orders).
type DualOwned interface {
	CustomerAccountID() uint
	ChefAccountID() uint
}

// Party is the relationship between an actor and an order, used by the
// transition tables to gate who may perform a given state change.
type Party string

const (
	PartyCustomer Party = "customer"
	PartyChef     Party = "chef"
	PartyAdmin    Party = "admin"
	PartyNone     Party = "none"
)

// PartyOf resolves the actor's standing toward an order. Admin standing wins
// even when the admin also happens to be a party to the order.
func PartyOf(actor Actor, target DualOwned) Party {
	switch {
	case actor.Role == models.RoleAdmin:
		return PartyAdmin
	case actor.ID == target.CustomerAccountID():
		return PartyCustomer
	case actor.ID == target.ChefAccountID():
		return PartyChef
	default:
		return PartyNone
	}
}
