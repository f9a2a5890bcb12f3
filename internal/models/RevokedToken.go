package models

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken records the jti of a JWT invalidated by logout. Rows older
// than their token's expiry are dead weight and can be purged at any time.
type RevokedToken struct {
	gorm.Model
	JTI       string    `json:"jti" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at"`
}
