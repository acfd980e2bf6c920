package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"foodondoor-backend/geo"
	"foodondoor-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart       = errors.New("cannot place order, cart is empty")
	ErrVendorMismatch  = errors.New("cart items belong to a different restaurant")
	ErrVendorNotFound  = errors.New("restaurant not found")
	ErrAddressNotFound = errors.New("delivery address not found for this customer")
)

// UnavailableItemsError fails a placement when any cart line's listing went
// off the menu. No partial order is created.
type UnavailableItemsError struct {
	Names []string
}

func (e *UnavailableItemsError) Error() string {
	return "some items are unavailable: " + strings.Join(e.Names, ", ")
}

// PlaceInput carries the client's checkout request. Prices are never taken
// from the client; the current listing price is authoritative.
type PlaceInput struct {
	VendorID      uint
	AddressID     uint
	PaymentMode   models.PaymentMode
	PaymentStatus string
	PaymentRef    string
}

// OrderService converts carts into immutable orders and handles the
// post-commit side effects.
type OrderService struct {
	DB     *gorm.DB
	Quoter *geo.FeeQuoter
	// ETA placeholder until a real model exists.
	DefaultETAMinutes int
	// Notify is invoked after commit with the placed order. Best-effort.
	Notify func(order *models.Order)
}

// Place collapses the customer's cart into an order. Order row, item
// snapshots and cart deletion commit in one transaction; all succeed or
// none do.
func (s *OrderService) Place(customer *models.Customer, in PlaceInput) (*models.Order, error) {
	var vendor models.Vendor
	if err := s.DB.First(&vendor, in.VendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	var address models.Address
	if err := s.DB.Where("id = ? AND customer_id = ?", in.AddressID, customer.ID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Preload("Food").
			Where("customer_id = ?", customer.ID).
			Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		// Defense in depth against a stale client-sent vendor id.
		if cartItems[0].Food.VendorID != vendor.ID {
			return ErrVendorMismatch
		}

		// Re-check availability; reject the whole placement on any miss.
		var unavailable []string
		subtotal := decimal.Zero
		var snapshots []models.OrderItem
		for _, line := range cartItems {
			if !line.Food.IsAvailable {
				unavailable = append(unavailable, line.Food.Name)
				continue
			}
			subtotal = subtotal.Add(line.Food.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			snapshots = append(snapshots, models.OrderItem{
				FoodListingID: line.FoodListingID,
				Name:          line.Food.Name,
				Quantity:      line.Quantity,
				Price:         line.Food.Price,
			})
		}
		if len(unavailable) > 0 {
			return &UnavailableItemsError{Names: unavailable}
		}

		fee, _ := s.Quoter.Quote(vendor.Latitude, vendor.Longitude, address.Pincode)
		total := subtotal.Add(fee).Round(2)

		order = models.Order{
			CustomerID:      customer.ID,
			VendorID:        vendor.ID,
			Status:          models.StatusPlaced,
			ItemsSubtotal:   subtotal.Round(2),
			DeliveryFee:     fee,
			TotalAmount:     total,
			DeliveryAddress: address.Formatted(),
			PaymentMode:     in.PaymentMode,
			PaymentStatus:   in.PaymentStatus,
			PaymentRef:      in.PaymentRef,
			EstimatedTime:   s.DefaultETAMinutes,
			Items:           snapshots,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Consume the cart only after the order rows exist.
		return tx.Where("customer_id = ?", customer.ID).
			Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	// Side effects after commit: a failed notification never fails the
	// already-placed order.
	s.notifyVendor(&vendor, &order, customer)

	return &order, nil
}

func (s *OrderService) notifyVendor(vendor *models.Vendor, order *models.Order, customer *models.Customer) {
	notification := models.Notification{
		VendorID: vendor.ID,
		Title:    "New order " + order.OrderNumber,
		Body: fmt.Sprintf("%s placed an order for %s",
			customer.FullName, order.TotalAmount.StringFixed(2)),
	}
	if err := s.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for order %s: %v", order.OrderNumber, err)
	}

	if s.Notify != nil {
		s.Notify(order)
	}
	if vendor.FCMToken != "" {
		// Push delivery is an external collaborator; the registered device
		// token is only logged here.
		log.Printf("Push notification queued for vendor %s (order %s)", vendor.VendorID, order.OrderNumber)
	}
}

// EarningsSummary totals a vendor's delivered orders.
func (s *OrderService) EarningsSummary(vendorID uint) (decimal.Decimal, int64, error) {
	var orders []models.Order
	if err := s.DB.Where("vendor_id = ? AND status = ?", vendorID, models.StatusDelivered).
		Find(&orders).Error; err != nil {
		return decimal.Zero, 0, err
	}
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return total.Round(2), int64(len(orders)), nil
}
