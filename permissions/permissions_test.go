package permissions

import (
	"testing"

	"foodondoor-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCanWriteDirectOwnership(t *testing.T) {
	owner := &models.Vendor{ID: 1}
	other := &models.Vendor{ID: 2}
	menu := &models.Menu{ID: 10, VendorID: 1}

	assert.True(t, CanWrite(owner, menu))
	assert.False(t, CanWrite(other, menu))
}

func TestCanWriteWrongRole(t *testing.T) {
	customer := &models.Customer{ID: 1}
	menu := &models.Menu{ID: 10, VendorID: 1}

	// Same numeric id, different role
	assert.False(t, CanWrite(customer, menu))
}

func TestCanWriteParentIndirection(t *testing.T) {
	owner := &models.Vendor{ID: 3}
	other := &models.Vendor{ID: 4}

	// Listing with no direct vendor resolves through its menu
	listing := &models.FoodListing{
		ID:   20,
		Menu: &models.Menu{ID: 11, VendorID: 3},
	}

	assert.True(t, CanWrite(owner, listing))
	assert.False(t, CanWrite(other, listing))
}

func TestCanWriteDirectBeatsParent(t *testing.T) {
	vendor := &models.Vendor{ID: 5}

	// Denormalized vendor id wins over a stale parent
	listing := &models.FoodListing{
		ID:       21,
		VendorID: 5,
		Menu:     &models.Menu{ID: 12, VendorID: 99},
	}
	assert.True(t, CanWrite(vendor, listing))
}

func TestCanWriteFailsClosed(t *testing.T) {
	vendor := &models.Vendor{ID: 6}

	// No direct owner and an unloaded parent: deny
	listing := &models.FoodListing{ID: 22}
	assert.False(t, CanWrite(vendor, listing))

	// Resource with no ownership relations at all: deny
	assert.False(t, CanWrite(vendor, struct{}{}))
}

func TestCanWriteSelfOwnedProfiles(t *testing.T) {
	vendor := &models.Vendor{ID: 7}
	assert.True(t, CanWrite(vendor, vendor))
	assert.False(t, CanWrite(vendor, &models.Vendor{ID: 8}))

	courier := &models.Courier{ID: "abc-123"}
	assert.True(t, CanWrite(courier, courier))
	assert.False(t, CanWrite(courier, &models.Courier{ID: "def-456"}))
}

func TestCanWriteCustomerResources(t *testing.T) {
	customer := &models.Customer{ID: 9}
	addr := &models.Address{ID: 30, CustomerID: 9}
	cartItem := &models.CartItem{ID: 40, CustomerID: 9}

	assert.True(t, CanWrite(customer, addr))
	assert.True(t, CanWrite(customer, cartItem))
	assert.False(t, CanWrite(&models.Customer{ID: 10}, addr))
}

func TestCanReadIsRoleScoped(t *testing.T) {
	vendor := &models.Vendor{ID: 1}
	otherVendorsMenu := &models.Menu{ID: 13, VendorID: 2}

	// Same-role read-all; writes stay owner-only
	assert.True(t, CanRead(vendor, otherVendorsMenu))
	assert.False(t, CanWrite(vendor, otherVendorsMenu))

	customer := &models.Customer{ID: 1}
	assert.False(t, CanRead(customer, otherVendorsMenu))
}
