package handlers

import (
	"net/http"

	"homechef-api/middleware"
	"homechef-api/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	Favorites *services.FavoriteService
}

type AddFavoriteRequest struct {
	MealID uint `json:"meal_id" binding:"required"`
}

// Add favorites a meal for the caller
func (h *FavoriteHandler) Add(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fav, err := h.Favorites.Add(actor, req.MealID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal favorited", "favorite": fav})
}

// List returns the caller's favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	actor := middleware.GetActor(c)
	favs, err := h.Favorites.List(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(favs), "favorites": favs})
}

// Remove deletes one of the caller's favorites
func (h *FavoriteHandler) Remove(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Favorites.Remove(actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}
