package services

import (
	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/store"
)

// FavoriteService handles per-account favorite meals with a snapshot of the
// meal's name, price and chef at favoriting time.
type FavoriteService struct {
	Store *store.Store
	Auth  *lifecycle.Authorizer
}

func (s *FavoriteService) Add(actor lifecycle.Actor, mealID uint) (*models.Favorite, error) {
	meal, err := s.Store.GetMeal(mealID)
	if err != nil {
		return nil, err
	}
	fav := models.Favorite{
		UserID:    actor.ID,
		MealID:    meal.ID,
		MealName:  meal.Name,
		MealPrice: meal.Price,
		ChefID:    meal.ChefID,
	}
	if err := s.Store.CreateFavorite(&fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

func (s *FavoriteService) List(actor lifecycle.Actor) ([]models.Favorite, error) {
	return s.Store.ListFavorites(actor.ID)
}

// Remove deletes a favorite; only the owning account may (no admin override
// is needed for a purely personal list).
func (s *FavoriteService) Remove(actor lifecycle.Actor, favoriteID uint) error {
	fav, err := s.Store.GetFavorite(favoriteID)
	if err != nil {
		return err
	}
	if fav.UserID != actor.ID {
		return lifecycle.ErrForbidden()
	}
	return s.Store.DeleteFavorite(favoriteID)
}
