package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusAccepted       OrderStatus = "Accepted"
	StatusPreparing      OrderStatus = "Preparing"
	StatusReadyForPickup OrderStatus = "ReadyForPickup"
	StatusPickedUp       OrderStatus = "PickedUp"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// IsTerminal reports whether no further transition can leave the state.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentMode string

const (
	PaymentModeCOD    PaymentMode = "COD"
	PaymentModeOnline PaymentMode = "Online"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	OrderNumber     string          `json:"order_number" gorm:"uniqueIndex"`
	CustomerID      uint            `json:"customer_id" gorm:"not null;index"`
	Customer        Customer        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	VendorID        uint            `json:"vendor_id" gorm:"not null;index"`
	Vendor          Vendor          `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	CourierID       *string         `json:"courier_id" gorm:"type:uuid"`
	Courier         *Courier        `json:"courier,omitempty" gorm:"foreignKey:CourierID"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'Placed'"`
	ItemsSubtotal   decimal.Decimal `json:"items_subtotal" gorm:"type:decimal(10,2)"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	DeliveryAddress string          `json:"delivery_address" gorm:"not null"` // snapshot at order time
	PaymentMode     PaymentMode     `json:"payment_mode" gorm:"default:'COD'"`
	PaymentStatus   string          `json:"payment_status" gorm:"default:'pending'"`
	PaymentRef      string          `json:"payment_ref"`
	EstimatedTime   int             `json:"estimated_time_minutes"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BeforeCreate assigns a unique order number, e.g. ORD-20240115104530-a1b2c3d4.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("ORD-%s-%s",
			time.Now().Format("20060102150405"), uuid.NewString()[:8])
	}
	return nil
}

// OrderItem is a snapshot of a cart line at order time. Name and price are
// copied so later listing edits never change a placed order.
type OrderItem struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OrderID       uint            `json:"order_id" gorm:"not null;index"`
	FoodListingID uint            `json:"food_listing_id" gorm:"not null"`
	Name          string          `json:"name" gorm:"not null"`
	Quantity      int             `json:"quantity" gorm:"not null"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// Notification is created for a vendor as a side effect of order placement.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VendorID  uint      `json:"vendor_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
