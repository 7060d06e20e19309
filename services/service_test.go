package services

import (
	"path/filepath"
	"testing"

	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return st
}

func seedUser(t *testing.T, st *store.Store, email string, role models.Role, status models.AccountStatus) *models.User {
	t.Helper()
	u := &models.User{Name: email, Email: email, PasswordHash: "x", Role: role, Status: status}
	if role == models.RoleChef {
		id := "chef-" + email
		u.ChefID = &id
	}
	require.NoError(t, st.CreateUser(u))
	return u
}

func seedMeal(t *testing.T, st *store.Store, chef *models.User, price string) *models.Meal {
	t.Helper()
	m := &models.Meal{
		OwnerID:     chef.ID,
		ChefID:      *chef.ChefID,
		Name:        "Butter Chicken",
		Price:       decimal.RequireFromString(price),
		Ingredients: []string{"chicken", "butter", "spices"},
		IsAvailable: true,
	}
	require.NoError(t, st.CreateMeal(m))
	return m
}

func actorFor(u *models.User) lifecycle.Actor {
	return lifecycle.Actor{ID: u.ID, Email: u.Email, Role: u.Role, Status: u.Status}
}
