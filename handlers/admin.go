package handlers

import (
	"net/http"

	"homechef-api/middleware"
	"homechef-api/models"
	"homechef-api/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Users  *services.UserService
	Orders *services.OrderService
	Stats  *services.StatsService
}

// ListUsers returns all users, optionally filtered by role — admin only
func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor := middleware.GetActor(c)
	users, err := h.Users.List(actor, c.Query("role"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type SetUserStatusRequest struct {
	Status models.AccountStatus `json:"status" binding:"required"`
}

// SetUserStatus flags or unflags an account (the "make fraud" action)
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Users.SetStatus(actor, id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User status updated", "user": user})
}

// ListOrders returns all orders with an optional status filter — admin only
func (h *AdminHandler) ListOrders(c *gin.Context) {
	actor := middleware.GetActor(c)
	orders, err := h.Orders.ListAll(actor, c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Statistics returns the platform dashboard numbers — admin only
func (h *AdminHandler) Statistics(c *gin.Context) {
	actor := middleware.GetActor(c)
	stats, err := h.Stats.Platform(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
