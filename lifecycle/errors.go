package lifecycle

import "errors"

// Kind classifies every failure this module can return.
type Kind string

const (
	KindValidation             Kind = "validation_error"
	KindForbidden              Kind = "forbidden"
	KindInvalidTransition      Kind = "invalid_transition"
	KindTerminalStateViolation Kind = "terminal_state_violation"
	KindDuplicateRequest       Kind = "duplicate_request"
	KindPaymentNotVerified     Kind = "payment_not_verified"
	KindConcurrentModification Kind = "concurrent_modification"
	KindNotFound               Kind = "not_found"
)

// Error is the single error type surfaced by the lifecycle core and its
// collaborators. Fields carries field-level validation detail; CurrentState
// carries transition context so the caller can refresh its view.
type Error struct {
	Kind         Kind              `json:"kind"`
	Message      string            `json:"message"`
	Fields       map[string]string `json:"fields,omitempty"`
	CurrentState string            `json:"current_state,omitempty"`
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Message }

// KindOf extracts the error kind, or "" for foreign errors.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}

// IsInvalidTransition reports whether err is an invalid transition,
// including the terminal-state subtype.
func IsInvalidTransition(err error) bool {
	k := KindOf(err)
	return k == KindInvalidTransition || k == KindTerminalStateViolation
}

func ErrValidation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// ErrForbidden deliberately carries no detail beyond "not permitted".
func ErrForbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "not permitted"}
}

func ErrInvalidTransition(current, requested string) *Error {
	return &Error{
		Kind:         KindInvalidTransition,
		Message:      "cannot transition from " + current + " to " + requested,
		CurrentState: current,
	}
}

func ErrTerminalState(current string) *Error {
	return &Error{
		Kind:         KindTerminalStateViolation,
		Message:      current + " is a terminal state",
		CurrentState: current,
	}
}

func ErrDuplicateRequest() *Error {
	return &Error{Kind: KindDuplicateRequest, Message: "a pending request for this role already exists"}
}

func ErrPaymentNotVerified() *Error {
	return &Error{Kind: KindPaymentNotVerified, Message: "payment confirmation could not be verified"}
}

// ErrConcurrentModification means a conditional write lost a race; the caller
// may re-read and retry. This module never retries on its own.
func ErrConcurrentModification(current string) *Error {
	return &Error{
		Kind:         KindConcurrentModification,
		Message:      "entity was modified concurrently",
		CurrentState: current,
	}
}

func ErrNotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}
