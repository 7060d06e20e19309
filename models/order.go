package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a meal order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus is an independent axis from OrderStatus
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	MealID          uint            `json:"meal_id" gorm:"not null;index"`
	Meal            Meal            `json:"meal,omitempty" gorm:"foreignKey:MealID"`
	ChefID          uint            `json:"chef_id" gorm:"not null;index"` // meal owner's account, denormalized at creation
	CustomerID      uint            `json:"customer_id" gorm:"not null;index"`
	Customer        User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	MealName        string          `json:"meal_name"` // snapshot
	Quantity        int             `json:"quantity" gorm:"not null"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"` // snapshot price at order time
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"not null;default:'pending'"`
	DeliveryAddress string          `json:"delivery_address" gorm:"not null"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Orders are jointly owned: the customer and the meal's chef.
func (o *Order) CustomerAccountID() uint { return o.CustomerID }
func (o *Order) ChefAccountID() uint     { return o.ChefID }
