package services

import (
	"homechef-api/lifecycle"
	"homechef-api/models"
	"homechef-api/store"
)

// ReviewService handles meal reviews. A review requires at least one
// delivered order for the meal by the reviewer, and every write recomputes
// the meal's average rating.
type ReviewService struct {
	Store *store.Store
	Auth  *lifecycle.Authorizer
}

type ReviewInput struct {
	MealID  uint   `json:"meal_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func validateRating(rating int) *lifecycle.Error {
	if rating < 1 || rating > 5 {
		return lifecycle.ErrValidation(map[string]string{"rating": "must be an integer between 1 and 5"})
	}
	return nil
}

func (s *ReviewService) Create(actor lifecycle.Actor, in ReviewInput) (*models.Review, error) {
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}
	if _, err := s.Store.GetMeal(in.MealID); err != nil {
		return nil, err
	}
	delivered, err := s.Store.HasDeliveredOrder(actor.ID, in.MealID)
	if err != nil {
		return nil, err
	}
	if !delivered {
		return nil, lifecycle.ErrForbidden()
	}
	review := models.Review{
		MealID:     in.MealID,
		ReviewerID: actor.ID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := s.Store.CreateReview(&review); err != nil {
		return nil, err
	}
	if err := s.refreshMealRating(in.MealID); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) Update(actor lifecycle.Actor, reviewID uint, rating int, comment string) (*models.Review, error) {
	review, err := s.Store.GetReview(reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionUpdate, review); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	review.Rating = rating
	review.Comment = comment
	if err := s.Store.SaveReview(review); err != nil {
		return nil, err
	}
	if err := s.refreshMealRating(review.MealID); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(actor lifecycle.Actor, reviewID uint) error {
	review, err := s.Store.GetReview(reviewID)
	if err != nil {
		return err
	}
	if err := s.Auth.Authorize(actor, lifecycle.ActionDelete, review); err != nil {
		return err
	}
	if err := s.Store.DeleteReview(reviewID); err != nil {
		return err
	}
	return s.refreshMealRating(review.MealID)
}

func (s *ReviewService) ListByMeal(mealID uint) ([]models.Review, error) {
	return s.Store.ListReviewsByMeal(mealID)
}

func (s *ReviewService) ListMine(actor lifecycle.Actor) ([]models.Review, error) {
	return s.Store.ListReviewsByReviewer(actor.ID)
}

func (s *ReviewService) refreshMealRating(mealID uint) error {
	avg, err := s.Store.MealRatingAverage(mealID)
	if err != nil {
		return err
	}
	return s.Store.SetMealRating(mealID, avg)
}
