package services

import (
	"errors"

	"foodondoor-backend/models"

	"gorm.io/gorm"
)

var (
	ErrFoodNotFound     = errors.New("food item not found")
	ErrFoodUnavailable  = errors.New("food item is currently unavailable")
	ErrMultiVendorCart  = errors.New("cart already has items from a different restaurant")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartService owns cart mutations. Every insertion enforces the
// single-vendor invariant, not just checkout.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// Items returns the customer's cart lines with listings preloaded.
func (s *CartService) Items(customerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.DB.Preload("Food").
		Where("customer_id = ?", customerID).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

// Add upserts a (customer, food) line, summing quantity when the line
// already exists. The vendor check and the upsert run in one transaction so
// concurrent adds cannot slip a second vendor into the cart.
func (s *CartService) Add(customerID, foodID uint, quantity int) (*models.CartItem, bool, error) {
	var item *models.CartItem
	var created bool

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var food models.FoodListing
		if err := tx.First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFoodNotFound
			}
			return err
		}
		if !food.IsAvailable {
			return ErrFoodUnavailable
		}

		// Single-vendor invariant: a non-empty cart pins the vendor.
		var existing models.CartItem
		err := tx.Preload("Food").
			Where("customer_id = ?", customerID).
			First(&existing).Error
		if err == nil && existing.Food.VendorID != food.VendorID {
			return ErrMultiVendorCart
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var line models.CartItem
		err = tx.Where("customer_id = ? AND food_listing_id = ?", customerID, foodID).
			First(&line).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = models.CartItem{
				CustomerID:    customerID,
				FoodListingID: foodID,
				Quantity:      quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			created = true
		case err != nil:
			return err
		default:
			line.Quantity += quantity
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		}
		line.Food = food
		item = &line
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return item, created, nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less deletes
// the line; deleting an already-absent line is not an error.
func (s *CartService) UpdateQuantity(customerID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		err := s.Remove(customerID, itemID)
		if errors.Is(err, ErrCartItemNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var line models.CartItem
	if err := s.DB.Preload("Food").
		Where("id = ? AND customer_id = ?", itemID, customerID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	line.Quantity = quantity
	if err := s.DB.Save(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// Remove deletes one line from the customer's cart.
func (s *CartService) Remove(customerID, itemID uint) error {
	res := s.DB.Where("id = ? AND customer_id = ?", itemID, customerID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear empties the customer's cart. Idempotent: clearing an empty cart
// succeeds.
func (s *CartService) Clear(customerID uint) error {
	return s.DB.Where("customer_id = ?", customerID).
		Delete(&models.CartItem{}).Error
}
