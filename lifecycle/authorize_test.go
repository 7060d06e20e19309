package lifecycle

import (
	"testing"

	"homechef-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeActor(id uint, role models.Role) Actor {
	return Actor{ID: id, Role: role, Status: models.AccountActive}
}

func TestAdminAllowedEverywhereExceptOrdering(t *testing.T) {
	auth := &Authorizer{}
	admin := activeActor(1, models.RoleAdmin)
	order := &models.Order{CustomerID: 2, ChefID: 3}

	assert.Nil(t, auth.Authorize(admin, ActionRead, order))
	assert.Nil(t, auth.Authorize(admin, ActionUpdate, order))
	assert.Nil(t, auth.Authorize(admin, ActionDelete, &models.Meal{OwnerID: 3}))

	err := auth.Authorize(admin, ActionPlaceOrder, nil)
	require.NotNil(t, err)
	assert.Equal(t, KindForbidden, err.Kind)
}

func TestAdminOrderingConfigurable(t *testing.T) {
	auth := &Authorizer{AllowAdminOrders: true}
	admin := activeActor(1, models.RoleAdmin)
	assert.Nil(t, auth.Authorize(admin, ActionPlaceOrder, nil))
}

func TestSelfOwnershipRule(t *testing.T) {
	auth := &Authorizer{}
	meal := &models.Meal{OwnerID: 5}

	assert.Nil(t, auth.Authorize(activeActor(5, models.RoleChef), ActionUpdate, meal))

	err := auth.Authorize(activeActor(6, models.RoleChef), ActionUpdate, meal)
	require.NotNil(t, err)
	assert.Equal(t, KindForbidden, err.Kind)
}

func TestDualOwnershipSymmetry(t *testing.T) {
	auth := &Authorizer{}
	order := &models.Order{CustomerID: 10, ChefID: 20}

	// both owners can read
	assert.Nil(t, auth.Authorize(activeActor(10, models.RoleCustomer), ActionRead, order))
	assert.Nil(t, auth.Authorize(activeActor(20, models.RoleChef), ActionRead, order))

	// a third, non-admin account cannot read or mutate
	for _, action := range []Action{ActionRead, ActionUpdate, ActionDelete} {
		err := auth.Authorize(activeActor(30, models.RoleCustomer), action, order)
		require.NotNil(t, err, "action %s", action)
		assert.Equal(t, KindForbidden, err.Kind)
	}
}

func TestFraudBlocksOrderCreationOnly(t *testing.T) {
	auth := &Authorizer{}
	fraud := Actor{ID: 10, Role: models.RoleCustomer, Status: models.AccountFraud}

	err := auth.Authorize(fraud, ActionPlaceOrder, nil)
	require.NotNil(t, err)
	assert.Equal(t, KindForbidden, err.Kind)

	// pre-existing resources stay readable
	own := &models.Order{CustomerID: 10, ChefID: 20}
	assert.Nil(t, auth.Authorize(fraud, ActionRead, own))
}

func TestChefCannotPlaceOrders(t *testing.T) {
	auth := &Authorizer{}
	err := auth.Authorize(activeActor(7, models.RoleChef), ActionPlaceOrder, nil)
	require.NotNil(t, err)
	assert.Equal(t, KindForbidden, err.Kind)
}

func TestPartyOf(t *testing.T) {
	order := &models.Order{CustomerID: 1, ChefID: 2}

	assert.Equal(t, PartyCustomer, PartyOf(activeActor(1, models.RoleCustomer), order))
	assert.Equal(t, PartyChef, PartyOf(activeActor(2, models.RoleChef), order))
	assert.Equal(t, PartyAdmin, PartyOf(activeActor(3, models.RoleAdmin), order))
	assert.Equal(t, PartyNone, PartyOf(activeActor(4, models.RoleCustomer), order))

	// admin standing wins even for a party to the order
	assert.Equal(t, PartyAdmin, PartyOf(activeActor(1, models.RoleAdmin), order))
}
