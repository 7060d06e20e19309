package handlers

import (
	"net/http"
	"strconv"

	"homechef-api/middleware"
	"homechef-api/models"
	"homechef-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Place creates a new pending order (customer only)
func (h *OrderHandler) Place(c *gin.Context) {
	actor := middleware.GetActor(c)
	var in services.PlaceOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Orders.Place(actor, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// ListMine returns the caller's orders as a customer
func (h *OrderHandler) ListMine(c *gin.Context) {
	actor := middleware.GetActor(c)
	orders, err := h.Orders.ListMine(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListIncoming returns orders against the caller's meals (chef dashboard)
func (h *OrderHandler) ListIncoming(c *gin.Context) {
	actor := middleware.GetActor(c)
	orders, err := h.Orders.ListIncoming(actor)
	if err != nil {
		writeError(c, err)
		return
	}

	// dashboard summary grouped by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	c.JSON(http.StatusOK, gin.H{"order_summary": summary, "count": len(orders), "orders": orders})
}

// Get returns one order to either of its owners or an admin
func (h *OrderHandler) Get(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.Orders.Get(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus moves an order through the state machine
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Orders.Advance(actor, id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order_id":       order.ID,
		"current_status": order.Status,
	})
}

type PayOrderRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
}

// Pay marks an order paid after the provider confirms the token
func (h *OrderHandler) Pay(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Orders.MarkPaid(c.Request.Context(), actor, id, req.PaymentToken)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment recorded",
		"order_id":       order.ID,
		"payment_status": order.PaymentStatus,
	})
}

// Refund flips a paid order to refunded (admin only)
func (h *OrderHandler) Refund(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.Orders.Refund(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Order refunded",
		"order_id":       order.ID,
		"payment_status": order.PaymentStatus,
	})
}
