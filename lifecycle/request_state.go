package lifecycle

import "homechef-api/models"

// Role-change requests have a two-step machine: pending→approved and
// pending→rejected, both terminal, both admin-only.

// CanSubmitRequest gates creation of a role-change request. Duplicate
// detection against outstanding requests is the store's concern.
func CanSubmitRequest(actor Actor, requested models.Role) *Error {
	if actor.Status != models.AccountActive {
		return ErrForbidden()
	}
	if requested != models.RoleChef && requested != models.RoleAdmin {
		return ErrValidation(map[string]string{"requested_role": "must be chef or admin"})
	}
	if actor.Role == requested {
		return ErrValidation(map[string]string{"requested_role": "account already has this role"})
	}
	return nil
}

// CanResolveRequest gates pending→approved/rejected. Resolved requests are
// immutable.
func CanResolveRequest(current models.RequestStatus, decision models.RequestStatus, actor Actor) *Error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden()
	}
	if decision != models.RequestApproved && decision != models.RequestRejected {
		return ErrValidation(map[string]string{"status": "must be approved or rejected"})
	}
	if current != models.RequestPending {
		return ErrTerminalState(string(current))
	}
	return nil
}
