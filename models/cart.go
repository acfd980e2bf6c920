package models

import "time"

// CartItem is one pending line in a customer's cart. All lines for a
// customer must reference listings of a single vendor at any time.
type CartItem struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CustomerID    uint        `json:"customer_id" gorm:"not null;uniqueIndex:idx_customer_food"`
	FoodListingID uint        `json:"food_listing_id" gorm:"not null;uniqueIndex:idx_customer_food"`
	Food          FoodListing `json:"food,omitempty" gorm:"foreignKey:FoodListingID"`
	Quantity      int         `json:"quantity" gorm:"not null;default:1"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
