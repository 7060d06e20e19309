package services

import (
	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/store"

	"github.com/shopspring/decimal"
)

// MealService handles chef-owned meal management and public browsing.
type MealService struct {
	Store *store.Store
	Auth  *lifecycle.Authorizer
}

type MealInput struct {
	Name             string          `json:"name" binding:"required"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	Ingredients      []string        `json:"ingredients" binding:"required,min=1"`
	DeliveryArea     string          `json:"delivery_area"`
	EstimatedMinutes int             `json:"estimated_time_minutes"`
}

func validateMealInput(in MealInput) *lifecycle.Error {
	fields := map[string]string{}
	if !in.Price.IsPositive() {
		fields["price"] = "must be positive"
	}
	if len(in.Ingredients) == 0 {
		fields["ingredients"] = "must not be empty"
	}
	if len(fields) > 0 {
		return lifecycle.ErrValidation(fields)
	}
	return nil
}

// Create adds a meal owned by the calling chef.
func (s *MealService) Create(actor lifecycle.Actor, in MealInput) (*models.Meal, error) {
	if actor.Role != models.RoleChef {
		return nil, lifecycle.ErrForbidden()
	}
	if err := validateMealInput(in); err != nil {
		return nil, err
	}
	owner, err := s.Store.GetUser(actor.ID)
	if err != nil {
		return nil, err
	}
	if owner.ChefID == nil {
		return nil, lifecycle.ErrForbidden()
	}
	meal := models.Meal{
		OwnerID:          actor.ID,
		ChefID:           *owner.ChefID,
		Name:             in.Name,
		Price:            in.Price,
		Ingredients:      in.Ingredients,
		DeliveryArea:     in.DeliveryArea,
		EstimatedMinutes: in.EstimatedMinutes,
		IsAvailable:      true,
	}
	if err := s.Store.CreateMeal(&meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update mutates a meal; only its owning chef or an admin may.
func (s *MealService) Update(actor lifecycle.Actor, mealID uint, in MealInput) (*models.Meal, error) {
	meal, err := s.Store.GetMeal(mealID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionUpdate, meal); err != nil {
		return nil, err
	}
	if err := validateMealInput(in); err != nil {
		return nil, err
	}
	meal.Name = in.Name
	meal.Price = in.Price
	meal.Ingredients = in.Ingredients
	meal.DeliveryArea = in.DeliveryArea
	meal.EstimatedMinutes = in.EstimatedMinutes
	if err := s.Store.SaveMeal(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// SetAvailability disables or re-enables a meal without deleting it.
func (s *MealService) SetAvailability(actor lifecycle.Actor, mealID uint, available bool) (*models.Meal, error) {
	meal, err := s.Store.GetMeal(mealID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionUpdate, meal); err != nil {
		return nil, err
	}
	meal.IsAvailable = available
	if err := s.Store.SaveMeal(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete removes a meal; only its owning chef or an admin may.
func (s *MealService) Delete(actor lifecycle.Actor, mealID uint) error {
	meal, err := s.Store.GetMeal(mealID)
	if err != nil {
		return err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionDelete, meal); err != nil {
		return err
	}
	return s.Store.DeleteMeal(mealID)
}

// Browse lists available meals; no auth required.
func (s *MealService) Browse() ([]models.Meal, error) {
	return s.Store.ListMeals()
}

func (s *MealService) Get(mealID uint) (*models.Meal, error) {
	return s.Store.GetMeal(mealID)
}

// ListMine returns all meals owned by the calling chef, available or not.
func (s *MealService) ListMine(actor lifecycle.Actor) ([]models.Meal, error) {
	return s.Store.ListMealsByOwner(actor.ID)
}
