// Package permissions decides read/write access from explicit ownership
// capabilities instead of probing struct fields.
package permissions

import "foodondoor-backend/models"

// Principal is an authenticated actor: vendor, customer or courier.
type Principal interface {
	PrincipalRef() (models.UserType, string)
}

// Owned resources name their owning (role, id) directly.
type Owned interface {
	OwnedBy() (models.UserType, string)
}

// ParentOwned resources resolve ownership through one parent entity, e.g. a
// food listing through its menu. Deeper indirection is not supported.
type ParentOwned interface {
	ParentResource() any
}

// CanRead grants read to any authenticated principal whose role matches the
// resource's owning role. No per-object check: same-role read-all.
func CanRead(p Principal, resource any) bool {
	role, _ := p.PrincipalRef()
	ownerRole, _, ok := resolveOwner(resource)
	if !ok {
		return false
	}
	return role == ownerRole
}

// CanWrite requires ownership: direct first, then one level of indirection.
// A resource with neither relation is denied.
func CanWrite(p Principal, resource any) bool {
	role, id := p.PrincipalRef()
	ownerRole, ownerID, ok := resolveOwner(resource)
	if !ok {
		return false
	}
	return role == ownerRole && id == ownerID
}

func resolveOwner(resource any) (models.UserType, string, bool) {
	if o, ok := resource.(Owned); ok {
		role, id := o.OwnedBy()
		// A zero owner id means the direct relation is unset; fall through
		// to the parent if there is one.
		if id != "" && id != "0" {
			return role, id, true
		}
	}
	if po, ok := resource.(ParentOwned); ok {
		parent := po.ParentResource()
		if parent == nil {
			return "", "", false
		}
		if o, ok := parent.(Owned); ok {
			role, id := o.OwnedBy()
			return role, id, id != "" && id != "0"
		}
	}
	return "", "", false
}
