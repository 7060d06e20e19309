package handlers

import (
	"net/http"

	"homechef-api/lifecycle"
	"homechef-api/services"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	Meals   *services.MealService
	Reviews *services.ReviewService
}

// BrowseMeals lists available meals (no auth needed)
func (h *PublicHandler) BrowseMeals(c *gin.Context) {
	meals, err := h.Meals.Browse()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// GetMeal returns one meal with its reviews
func (h *PublicHandler) GetMeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	meal, err := h.Meals.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	reviews, err := h.Reviews.ListByMeal(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal, "reviews": reviews})
}

// GetStateMachineInfo exposes the order transition table for docs/Postman
func (h *PublicHandler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"order_transitions": lifecycle.GetAllTransitions(),
		"terminal_states":   []string{"delivered", "cancelled"},
		"payment_axis":      []string{"pending", "paid", "refunded"},
	})
}
