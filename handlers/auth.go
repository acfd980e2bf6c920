package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"foodondoor-backend/config"
	"foodondoor-backend/models"
	"foodondoor-backend/otp"
	"foodondoor-backend/token"

	"github.com/gin-gonic/gin"
)

type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=10,max=15"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=10,max=15"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// issueOTP runs the shared send-otp flow: generation, SMS hand-off, and the
// development debug echo of the code.
func issueOTP(c *gin.Context, phone string) {
	code, err := OTP.Issue(phone)
	if err != nil {
		if errors.Is(err, otp.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
		return
	}

	SMS.Send(phone, "Your FoodOnDoor verification code is: "+code)

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent successfully",
		// Remove in production; kept for client development without SMS.
		"debug_otp": code,
	})
}

// otpStatus maps OTP verification failures to response codes.
func otpStatus(err error) int {
	switch {
	case errors.Is(err, otp.ErrExpired), errors.Is(err, otp.ErrInvalidCode):
		return http.StatusBadRequest
	case errors.Is(err, otp.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// RefreshToken exchanges a live refresh token for a fresh pair. The
// referenced principal must still exist and be active; tokens are not
// proactively revoked, only rejected here.
func RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := token.ParseRefresh(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	var name, phone string
	switch claims.UserType {
	case models.UserTypeVendor:
		id, convErr := strconv.ParseUint(claims.PrincipalID, 10, 64)
		if convErr != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
			return
		}
		var vendor models.Vendor
		if err := config.DB.Where("id = ? AND is_active = ?", id, true).First(&vendor).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found or disabled"})
			return
		}
		name, phone = vendor.RestaurantName, vendor.Phone
	case models.UserTypeCustomer:
		id, convErr := strconv.ParseUint(claims.PrincipalID, 10, 64)
		if convErr != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
			return
		}
		var customer models.Customer
		if err := config.DB.Where("id = ? AND is_active = ?", id, true).First(&customer).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found or disabled"})
			return
		}
		name, phone = customer.FullName, customer.Phone
	case models.UserTypeCourier:
		var courier models.Courier
		if err := config.DB.Where("id = ? AND is_active = ?", claims.PrincipalID, true).First(&courier).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found or disabled"})
			return
		}
		name, phone = courier.Name, courier.Phone
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	pair, err := token.IssuePair(claims.PrincipalID, claims.UserType, name, phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": pair.Access, "refresh": pair.Refresh})
}
