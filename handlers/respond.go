package handlers

import (
	"errors"
	"net/http"

	"homechef-api/lifecycle"

	"github.com/gin-gonic/gin"
)

// statusFor maps lifecycle error kinds to HTTP statuses.
func statusFor(kind lifecycle.Kind) int {
	switch kind {
	case lifecycle.KindValidation, lifecycle.KindPaymentNotVerified:
		return http.StatusBadRequest
	case lifecycle.KindForbidden:
		return http.StatusForbidden
	case lifecycle.KindNotFound:
		return http.StatusNotFound
	case lifecycle.KindInvalidTransition, lifecycle.KindTerminalStateViolation,
		lifecycle.KindDuplicateRequest, lifecycle.KindConcurrentModification:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a lifecycle error as a structured body; anything else is
// an opaque 500.
func writeError(c *gin.Context, err error) {
	var le *lifecycle.Error
	if errors.As(err, &le) {
		body := gin.H{"kind": le.Kind, "error": le.Message}
		if len(le.Fields) > 0 {
			body["fields"] = le.Fields
		}
		if le.CurrentState != "" {
			body["current_state"] = le.CurrentState
		}
		c.JSON(statusFor(le.Kind), body)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
