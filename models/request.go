package models

import "time"

// RequestStatus tracks a role-change request's resolution
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RoleChangeRequest is a user's application to become a chef or an admin.
// It is immutable once resolved.
type RoleChangeRequest struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	User          User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RequestedRole Role          `json:"requested_role" gorm:"not null"`
	CurrentRole   Role          `json:"current_role" gorm:"not null"` // snapshot at submission
	Status        RequestStatus `json:"status" gorm:"not null;default:'pending'"`
	ReviewedBy    *uint         `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (r *RoleChangeRequest) OwnerAccountID() uint { return r.UserID }
