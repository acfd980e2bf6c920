package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Menu struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	VendorID    uint          `json:"vendor_id" gorm:"not null;uniqueIndex:idx_vendor_menu_name"`
	Vendor      Vendor        `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Name        string        `json:"name" gorm:"not null;uniqueIndex:idx_vendor_menu_name"`
	Description string        `json:"description"`
	IsActive    bool          `json:"is_active"`
	Items       []FoodListing `json:"items,omitempty" gorm:"foreignKey:MenuID"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type FoodListing struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	MenuID      uint            `json:"menu_id" gorm:"not null;uniqueIndex:idx_menu_item_name"`
	Menu        *Menu           `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
	VendorID    uint            `json:"vendor_id" gorm:"index"` // denormalized from the menu
	Name        string          `json:"name" gorm:"not null;uniqueIndex:idx_menu_item_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
