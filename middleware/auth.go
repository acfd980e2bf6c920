package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"foodondoor-backend/config"
	"foodondoor-backend/models"
	"foodondoor-backend/token"

	"github.com/gin-gonic/gin"
)

// Context keys for the loaded principal records.
const (
	ctxVendor   = "vendor"
	ctxCustomer = "customer"
	ctxCourier  = "courier"
)

// BearerToken extracts the raw token from the Authorization header. The
// second return distinguishes "no credential supplied" from a malformed
// header so callers can treat anonymous and bad-token differently.
func BearerToken(c *gin.Context) (string, bool, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false, nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", true, errors.New("authorization header must be 'Bearer <token>'")
	}
	return parts[1], true, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

// authenticate runs the shared half of the three authenticators: bearer
// extraction, signature/expiry verification and the role-claim check.
func authenticate(c *gin.Context, role models.UserType) (*token.Claims, bool) {
	raw, present, err := BearerToken(c)
	if !present {
		abortUnauthorized(c, "Authorization header required (Bearer <token>)")
		return nil, false
	}
	if err != nil {
		abortUnauthorized(c, err.Error())
		return nil, false
	}

	claims, err := token.ParseAccess(raw, role)
	switch {
	case errors.Is(err, token.ErrExpired):
		abortUnauthorized(c, "Token has expired")
		return nil, false
	case errors.Is(err, token.ErrWrongRole):
		abortUnauthorized(c, "Token is not valid for this role")
		return nil, false
	case err != nil:
		abortUnauthorized(c, "Invalid token")
		return nil, false
	}
	return claims, true
}

// VendorAuth validates a vendor access token and attaches the active Vendor
// record to the context so handlers never re-query by id.
func VendorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, models.UserTypeVendor)
		if !ok {
			return
		}
		id, err := strconv.ParseUint(claims.PrincipalID, 10, 64)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}
		var vendor models.Vendor
		if err := config.DB.Where("id = ? AND is_active = ?", id, true).
			First(&vendor).Error; err != nil {
			abortUnauthorized(c, "Vendor account not found or disabled")
			return
		}
		c.Set(ctxVendor, &vendor)
		c.Next()
	}
}

// CustomerAuth validates a customer access token and attaches the active
// Customer record to the context.
func CustomerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, models.UserTypeCustomer)
		if !ok {
			return
		}
		id, err := strconv.ParseUint(claims.PrincipalID, 10, 64)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}
		var customer models.Customer
		if err := config.DB.Where("id = ? AND is_active = ?", id, true).
			First(&customer).Error; err != nil {
			abortUnauthorized(c, "Customer account not found or disabled")
			return
		}
		c.Set(ctxCustomer, &customer)
		c.Next()
	}
}

// CourierAuth validates a courier access token and attaches the active
// Courier record to the context.
func CourierAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, models.UserTypeCourier)
		if !ok {
			return
		}
		var courier models.Courier
		if err := config.DB.Where("id = ? AND is_active = ?", claims.PrincipalID, true).
			First(&courier).Error; err != nil {
			abortUnauthorized(c, "Courier account not found or disabled")
			return
		}
		c.Set(ctxCourier, &courier)
		c.Next()
	}
}

// GetVendor returns the vendor attached by VendorAuth.
func GetVendor(c *gin.Context) *models.Vendor {
	v, _ := c.Get(ctxVendor)
	return v.(*models.Vendor)
}

// GetCustomer returns the customer attached by CustomerAuth.
func GetCustomer(c *gin.Context) *models.Customer {
	v, _ := c.Get(ctxCustomer)
	return v.(*models.Customer)
}

// GetCourier returns the courier attached by CourierAuth.
func GetCourier(c *gin.Context) *models.Courier {
	v, _ := c.Get(ctxCourier)
	return v.(*models.Courier)
}
