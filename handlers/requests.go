package handlers

import (
	"net/http"

	"homechef-api/middleware"
	"homechef-api/models"
	"homechef-api/services"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	Requests *services.RequestService
}

type SubmitRequestRequest struct {
	RequestedRole models.Role `json:"requested_role" binding:"required"`
}

// Submit creates a pending role-change request for the caller
func (h *RequestHandler) Submit(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.Requests.Submit(actor, req.RequestedRole)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Request submitted", "request": r})
}

// ListMine returns the caller's own requests
func (h *RequestHandler) ListMine(c *gin.Context) {
	actor := middleware.GetActor(c)
	reqs, err := h.Requests.ListMine(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reqs), "requests": reqs})
}

// List returns all requests (admin dashboard)
func (h *RequestHandler) List(c *gin.Context) {
	actor := middleware.GetActor(c)
	reqs, err := h.Requests.List(actor, c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reqs), "requests": reqs})
}

type ResolveRequestRequest struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

// Resolve approves or rejects a pending request (admin only)
func (h *RequestHandler) Resolve(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ResolveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.Requests.Resolve(actor, id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request " + string(r.Status), "request": r})
}
