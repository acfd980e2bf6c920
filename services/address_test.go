package services

import (
	"testing"

	"foodondoor-backend/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AddressServiceSuite struct {
	suite.Suite
	db        *gorm.DB
	addresses *AddressService
	customer  models.Customer
}

func (s *AddressServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.addresses = NewAddressService(s.db)

	s.customer = models.Customer{Phone: "9876543210", FullName: "Asha", IsActive: true}
	s.Require().NoError(s.db.Create(&s.customer).Error)
}

func (s *AddressServiceSuite) create(line1 string, isDefault bool) models.Address {
	a := models.Address{
		CustomerID:   s.customer.ID,
		AddressLine1: line1, City: "Bengaluru", State: "Karnataka", Pincode: "560001",
		IsDefault: isDefault,
	}
	s.Require().NoError(s.addresses.Create(&a))
	return a
}

func (s *AddressServiceSuite) defaults() []models.Address {
	var out []models.Address
	s.Require().NoError(s.db.Where("customer_id = ? AND is_default = ?", s.customer.ID, true).Find(&out).Error)
	return out
}

func (s *AddressServiceSuite) TestCreateNewDefaultDemotesOld() {
	home := s.create("12 MG Road", true)
	office := s.create("7 Brigade Rd", true)

	defs := s.defaults()
	s.Require().Len(defs, 1)
	s.Equal(office.ID, defs[0].ID)

	var reloaded models.Address
	s.Require().NoError(s.db.First(&reloaded, home.ID).Error)
	s.False(reloaded.IsDefault)
}

func (s *AddressServiceSuite) TestUpdatePromotesToDefault() {
	s.create("12 MG Road", true)
	office := s.create("7 Brigade Rd", false)

	updated, err := s.addresses.Update(s.customer.ID, office.ID, func(a *models.Address) {
		a.IsDefault = true
	})
	s.Require().NoError(err)
	s.True(updated.IsDefault)

	defs := s.defaults()
	s.Require().Len(defs, 1)
	s.Equal(office.ID, defs[0].ID)
}

func (s *AddressServiceSuite) TestListOrdersDefaultFirst() {
	s.create("12 MG Road", false)
	office := s.create("7 Brigade Rd", true)

	list, err := s.addresses.List(s.customer.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(office.ID, list[0].ID)
}

func (s *AddressServiceSuite) TestUpdateScopedToOwner() {
	addr := s.create("12 MG Road", false)

	other := models.Customer{Phone: "9876543211", FullName: "Ravi", IsActive: true}
	s.Require().NoError(s.db.Create(&other).Error)

	_, err := s.addresses.Update(other.ID, addr.ID, func(a *models.Address) { a.City = "Mumbai" })
	s.ErrorIs(err, ErrAddressNotFound)
}

func (s *AddressServiceSuite) TestDelete() {
	addr := s.create("12 MG Road", false)

	s.NoError(s.addresses.Delete(s.customer.ID, addr.ID))
	s.ErrorIs(s.addresses.Delete(s.customer.ID, addr.ID), ErrAddressNotFound)
}

func TestAddressServiceSuite(t *testing.T) {
	suite.Run(t, new(AddressServiceSuite))
}
