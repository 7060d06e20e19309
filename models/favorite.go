package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Favorite snapshots meal name/price/chef at the time of favoriting.
type Favorite struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_fav_user_meal"`
	MealID    uint            `json:"meal_id" gorm:"not null;uniqueIndex:idx_fav_user_meal"`
	MealName  string          `json:"meal_name"`
	MealPrice decimal.Decimal `json:"meal_price" gorm:"type:decimal(10,2)"`
	ChefID    string          `json:"chef_id"`
	CreatedAt time.Time       `json:"created_at"`
}

func (f *Favorite) OwnerAccountID() uint { return f.UserID }
