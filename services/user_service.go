package services

import (
	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/store"
)

// UserService covers admin user management and profile reads.
type UserService struct {
	Store *store.Store
	Auth  *lifecycle.Authorizer
}

func (s *UserService) Get(actor lifecycle.Actor, userID uint) (*models.User, error) {
	user, err := s.Store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionRead, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(actor lifecycle.Actor, role string) ([]models.User, error) {
	if actor.Role != models.RoleAdmin {
		return nil, lifecycle.ErrForbidden()
	}
	return s.Store.ListUsers(role)
}

// SetStatus flips an account between active and fraud. Admin only; a
// fraud-flagged account keeps its existing data and stays readable, it just
// loses the ability to create new orders.
func (s *UserService) SetStatus(actor lifecycle.Actor, userID uint, status models.AccountStatus) (*models.User, error) {
	if actor.Role != models.RoleAdmin {
		return nil, lifecycle.ErrForbidden()
	}
	if status != models.AccountActive && status != models.AccountFraud {
		return nil, lifecycle.ErrValidation(map[string]string{"status": "must be active or fraud"})
	}
	target, err := s.Store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if target.Role == models.RoleAdmin && status == models.AccountFraud {
		return nil, lifecycle.ErrValidation(map[string]string{"status": "admin accounts cannot be flagged"})
	}
	if err := s.Store.SetUserStatus(userID, status); err != nil {
		return nil, err
	}
	return s.Store.GetUser(userID)
}
