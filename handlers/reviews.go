package handlers

import (
	"net/http"

	"homechef-api/middleware"
	"homechef-api/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

// Create adds a review for a meal the caller has had delivered
func (h *ReviewHandler) Create(c *gin.Context) {
	actor := middleware.GetActor(c)
	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.Reviews.Create(actor, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review created", "review": review})
}

// ListMine returns the caller's reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	actor := middleware.GetActor(c)
	reviews, err := h.Reviews.ListMine(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Update edits a review (reviewer or admin)
func (h *ReviewHandler) Update(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.Reviews.Update(actor, id, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated", "review": review})
}

// Delete removes a review (reviewer or admin)
func (h *ReviewHandler) Delete(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Reviews.Delete(actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
