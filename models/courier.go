package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Courier is a delivery partner. Authentication is OTP-only; a courier is
// considered registered once a name has been set.
type Courier struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Courier) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// IsRegistered reports whether the courier completed onboarding.
func (d *Courier) IsRegistered() bool {
	return d.Name != ""
}
