package handlers

import (
	"net/http"

	"homechef-api/middleware"
	"homechef-api/services"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	Meals *services.MealService
}

// Create adds a new meal owned by the calling chef
func (h *MealHandler) Create(c *gin.Context) {
	actor := middleware.GetActor(c)
	var in services.MealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := h.Meals.Create(actor, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal created", "meal": meal})
}

// ListMine returns the calling chef's meals, available or not
func (h *MealHandler) ListMine(c *gin.Context) {
	actor := middleware.GetActor(c)
	meals, err := h.Meals.ListMine(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// Update mutates a meal (owning chef or admin)
func (h *MealHandler) Update(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.MealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := h.Meals.Update(actor, id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated", "meal": meal})
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetAvailability disables or re-enables a meal without deleting it
func (h *MealHandler) SetAvailability(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := h.Meals.SetAvailability(actor, id, *req.IsAvailable)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal availability updated", "meal": meal})
}

// Delete removes a meal (owning chef or admin)
func (h *MealHandler) Delete(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Meals.Delete(actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}
