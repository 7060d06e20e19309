package models

import (
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleChef     Role = "chef"
	RoleAdmin    Role = "admin"
)

// AccountStatus marks an account as usable or flagged
type AccountStatus string

const (
	AccountActive AccountStatus = "active"
	AccountFraud  AccountStatus = "fraud"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"not null"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string        `json:"-" gorm:"not null"`
	Role         Role          `json:"role" gorm:"not null;default:'customer'"`
	Status       AccountStatus `json:"status" gorm:"not null;default:'active'"`
	ChefID       *string       `json:"chef_id,omitempty" gorm:"uniqueIndex"` // set iff role is chef
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// OwnerAccountID lets the authorization predicate treat a user record as self-owned.
func (u *User) OwnerAccountID() uint { return u.ID }
