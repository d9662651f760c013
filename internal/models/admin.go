package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSingletonKey is the fixed value stored in every admin row. The unique
// index on the column guarantees at most one row can ever be committed, even
// under concurrent registration attempts.
const AdminSingletonKey = "admin"

// Admin is the single administrative account for the site.
//
// OTP and OTPExpiry are both nil or both set; they are cleared the moment the
// account becomes verified. IsVerified never reverts to false.
type Admin struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	Singleton string `gorm:"uniqueIndex;not null" json:"-"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	OTP        *string    `gorm:"size:6" json:"-"`
	OTPExpiry  *time.Time `json:"-"`
	IsVerified bool       `gorm:"default:false;not null" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the UUID and pins the singleton key.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Singleton == "" {
		a.Singleton = AdminSingletonKey
	}
	return nil
}
