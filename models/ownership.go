package models

import "strconv"

// Ownership and principal identity live on the models themselves so the
// authorizer can walk them without probing struct fields.

// PrincipalRef identifies an authenticated actor as (role, id).
func (v *Vendor) PrincipalRef() (UserType, string) {
	return UserTypeVendor, strconv.FormatUint(uint64(v.ID), 10)
}

func (c *Customer) PrincipalRef() (UserType, string) {
	return UserTypeCustomer, strconv.FormatUint(uint64(c.ID), 10)
}

func (d *Courier) PrincipalRef() (UserType, string) {
	return UserTypeCourier, d.ID
}

// OwnedBy returns the owning (role, id) of a resource.

// A vendor profile is owned by itself: identity equality.
func (v *Vendor) OwnedBy() (UserType, string) {
	return v.PrincipalRef()
}

func (c *Customer) OwnedBy() (UserType, string) {
	return c.PrincipalRef()
}

func (d *Courier) OwnedBy() (UserType, string) {
	return d.PrincipalRef()
}

func (m *Menu) OwnedBy() (UserType, string) {
	return UserTypeVendor, strconv.FormatUint(uint64(m.VendorID), 10)
}

// A food listing carries a denormalized vendor id; when it is unset the
// owner is resolved through the parent menu.
func (f *FoodListing) OwnedBy() (UserType, string) {
	return UserTypeVendor, strconv.FormatUint(uint64(f.VendorID), 10)
}

// ParentResource supports one level of ownership indirection.
func (f *FoodListing) ParentResource() any {
	if f.Menu == nil {
		return nil
	}
	return f.Menu
}

func (a *Address) OwnedBy() (UserType, string) {
	return UserTypeCustomer, strconv.FormatUint(uint64(a.CustomerID), 10)
}

func (ci *CartItem) OwnedBy() (UserType, string) {
	return UserTypeCustomer, strconv.FormatUint(uint64(ci.CustomerID), 10)
}

// Orders hang off the vendor for ownership purposes; customer and courier
// access is checked against their own foreign keys in the handlers.
func (o *Order) OwnedBy() (UserType, string) {
	return UserTypeVendor, strconv.FormatUint(uint64(o.VendorID), 10)
}

func (n *Notification) OwnedBy() (UserType, string) {
	return UserTypeVendor, strconv.FormatUint(uint64(n.VendorID), 10)
}
