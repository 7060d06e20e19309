package models

import "time"

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	MealID     uint      `json:"meal_id" gorm:"not null;index"`
	Meal       Meal      `json:"meal,omitempty" gorm:"foreignKey:MealID"`
	ReviewerID uint      `json:"reviewer_id" gorm:"not null;index"`
	Reviewer   User      `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	Rating     int       `json:"rating" gorm:"not null"` // 1-5
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *Review) OwnerAccountID() uint { return r.ReviewerID }
