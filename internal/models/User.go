package models

import "gorm.io/gorm"

// Role is the closed set of account kinds the platform knows about.
type Role string

const (
	RoleClient Role = "client"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

// OwnerStatus tracks the admin review state of an owner account.
// An owner's activities are publicly visible only once the owner is approved.
type OwnerStatus string

const (
	OwnerPending  OwnerStatus = "pending"
	OwnerApproved OwnerStatus = "approved"
	OwnerRejected OwnerStatus = "rejected"
)

type User struct {
	gorm.Model
	Name     string      `json:"name"`
	Email    string      `json:"email" gorm:"unique"`
	Password string      `json:"-"`
	Phone    string      `json:"phone"`
	Role     Role        `json:"role"`
	Status   OwnerStatus `json:"status" gorm:"default:approved"`

	Activities []Activity `gorm:"foreignKey:UserID" json:"activities,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
