package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Meal struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	OwnerID          uint            `json:"owner_id" gorm:"not null;index"`
	Owner            User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	ChefID           string          `json:"chef_id" gorm:"not null;index"` // owning chef's identifier
	Name             string          `json:"name" gorm:"not null"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Ingredients      []string        `json:"ingredients" gorm:"serializer:json;not null"`
	DeliveryArea     string          `json:"delivery_area"`
	EstimatedMinutes int             `json:"estimated_time_minutes"`
	IsAvailable      bool            `json:"is_available" gorm:"default:true"`
	Rating           float64         `json:"rating" gorm:"default:0"` // 0 until first review
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (m *Meal) OwnerAccountID() uint { return m.OwnerID }
