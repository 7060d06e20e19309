package services

import (
	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/store"

	"github.com/google/uuid"
)

// RequestService handles role-change requests: submission by any active
// account, resolution by admins only.
type RequestService struct {
	Store *store.Store
	Auth  *lifecycle.Authorizer
}

// Submit creates a pending request. At most one pending request may exist per
// (account, requested role) pair.
func (s *RequestService) Submit(actor lifecycle.Actor, requested models.Role) (*models.RoleChangeRequest, error) {
	if err := lifecycle.CanSubmitRequest(actor, requested); err != nil {
		return nil, err
	}
	pending, err := s.Store.HasPendingRequest(actor.ID, requested)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, lifecycle.ErrDuplicateRequest()
	}
	req := models.RoleChangeRequest{
		UserID:        actor.ID,
		RequestedRole: requested,
		CurrentRole:   actor.Role,
		Status:        models.RequestPending,
	}
	if err := s.Store.CreateRequest(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Resolve approves or rejects a pending request. Approving a chef request
// mints a fresh chef identifier; the unique index on users.chef_id is the
// collision backstop. A request already resolved fails the conditional write.
func (s *RequestService) Resolve(actor lifecycle.Actor, requestID uint, decision models.RequestStatus) (*models.RoleChangeRequest, error) {
	req, err := s.Store.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CanResolveRequest(req.Status, decision, actor); err != nil {
		return nil, err
	}

	var chefID *string
	if decision == models.RequestApproved && req.RequestedRole == models.RoleChef {
		id := uuid.NewString()
		chefID = &id
	}
	if err := s.Store.ResolveRequest(req, decision, actor.ID, req.RequestedRole, chefID); err != nil {
		return nil, err
	}
	return s.Store.GetRequest(requestID)
}

// List returns requests for the admin dashboard, optionally by status.
func (s *RequestService) List(actor lifecycle.Actor, status string) ([]models.RoleChangeRequest, error) {
	if actor.Role != models.RoleAdmin {
		return nil, lifecycle.ErrForbidden()
	}
	return s.Store.ListRequests(status)
}

// ListMine returns the actor's own requests.
func (s *RequestService) ListMine(actor lifecycle.Actor) ([]models.RoleChangeRequest, error) {
	return s.Store.ListRequestsByUser(actor.ID)
}
