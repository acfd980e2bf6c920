package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UserType is the role discriminator carried in token claims
type UserType string

const (
	UserTypeVendor   UserType = "vendor"
	UserTypeCustomer UserType = "customer"
	UserTypeCourier  UserType = "delivery"
	UserTypeAdmin    UserType = "admin"
)

type Vendor struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	VendorID       string    `json:"vendor_id" gorm:"uniqueIndex"` // external id, V-YYYYMMDD-NNNN
	Phone          string    `json:"phone" gorm:"uniqueIndex;not null"`
	RestaurantName string    `json:"restaurant_name" gorm:"not null"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	Pincode        string    `json:"pincode"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CuisineType    string    `json:"cuisine_type"`
	OpenHours      string    `json:"open_hours"`
	Rating         float64   `json:"rating" gorm:"default:0"`
	IsOpen         bool      `json:"is_open"`
	IsActive       bool      `json:"is_active"`
	FCMToken       string    `json:"-"`
	Menus          []Menu    `json:"menus,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AfterCreate assigns the external vendor id from the creation date and the
// row id, e.g. V-20240115-0003. The row id is unique under concurrent
// registrations where a running counter would not be, and the hook runs in
// the same transaction as the insert.
func (v *Vendor) AfterCreate(tx *gorm.DB) error {
	if v.VendorID != "" {
		return nil
	}
	v.VendorID = fmt.Sprintf("V-%s-%04d", v.CreatedAt.Format("20060102"), v.ID)
	return tx.Model(v).Update("vendor_id", v.VendorID).Error
}
