package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Address struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customer_id" gorm:"not null;index"`
	AddressLine1 string    `json:"address_line_1" gorm:"not null"`
	AddressLine2 string    `json:"address_line_2"`
	City         string    `json:"city" gorm:"not null"`
	State        string    `json:"state" gorm:"not null"`
	Pincode      string    `json:"pincode" gorm:"not null"`
	IsDefault    bool      `json:"is_default" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Formatted renders the address the way order snapshots store it.
func (a *Address) Formatted() string {
	s := a.AddressLine1
	if a.AddressLine2 != "" {
		s += ", " + a.AddressLine2
	}
	return s + ", " + a.City + ", " + a.State + ", " + a.Pincode
}
