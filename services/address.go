package services

import (
	"errors"

	"foodondoor-backend/models"

	"gorm.io/gorm"
)

// AddressService manages a customer's address book. At most one address per
// customer is the default.
type AddressService struct {
	DB *gorm.DB
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{DB: db}
}

func (s *AddressService) List(customerID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := s.DB.Where("customer_id = ?", customerID).
		Order("is_default desc, created_at asc").
		Find(&addresses).Error
	return addresses, err
}

// Create saves a new address. Setting it as default clears the flag on all
// siblings within the same transaction.
func (s *AddressService) Create(address *models.Address) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := clearDefault(tx, address.CustomerID); err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
}

// Update applies changes to an owned address, keeping the single-default
// invariant.
func (s *AddressService) Update(customerID, addressID uint, apply func(*models.Address)) (*models.Address, error) {
	var address models.Address
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND customer_id = ?", addressID, customerID).
			First(&address).Error; err != nil {
			return err
		}
		apply(&address)
		if address.IsDefault {
			if err := clearDefault(tx, customerID); err != nil {
				return err
			}
		}
		return tx.Save(&address).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (s *AddressService) Delete(customerID, addressID uint) error {
	res := s.DB.Where("id = ? AND customer_id = ?", addressID, customerID).
		Delete(&models.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func clearDefault(tx *gorm.DB, customerID uint) error {
	return tx.Model(&models.Address{}).
		Where("customer_id = ?", customerID).
		Update("is_default", false).Error
}
