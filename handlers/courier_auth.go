package handlers

import (
	"net/http"

	"foodondoor-backend/config"
	"foodondoor-backend/middleware"
	"foodondoor-backend/models"
	"foodondoor-backend/token"

	"github.com/gin-gonic/gin"
)

// SendCourierOTP issues a login code; the courier record is created on
// first contact so onboarding can finish after verification.
func SendCourierOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var courier models.Courier
	err := config.DB.Where(models.Courier{Phone: req.Phone}).
		Attrs(models.Courier{IsActive: true}).
		FirstOrCreate(&courier).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare account"})
		return
	}
	if !courier.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account is inactive"})
		return
	}
	issueOTP(c, req.Phone)
}

// VerifyCourierOTP verifies the code. A courier who has not completed
// registration gets is_new_user=true and no tokens yet.
func VerifyCourierOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := OTP.Verify(req.Phone, req.OTP); err != nil {
		c.JSON(otpStatus(err), gin.H{"error": err.Error()})
		return
	}

	var courier models.Courier
	if err := config.DB.Where("phone = ?", req.Phone).First(&courier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	if !courier.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account is inactive"})
		return
	}

	if !courier.IsRegistered() {
		c.JSON(http.StatusOK, gin.H{
			"is_new_user": true,
			"message":     "OTP verified. Please complete registration.",
		})
		return
	}

	pair, err := token.IssuePair(courier.ID, models.UserTypeCourier, courier.Name, courier.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_new_user": false,
		"access":      pair.Access,
		"refresh":     pair.Refresh,
		"user":        courier,
	})
}

type CourierRegisterRequest struct {
	Phone string `json:"phone" binding:"required,min=10,max=15"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// RegisterCourier completes onboarding for a phone that has verified an OTP
// and issues the first token pair.
func RegisterCourier(c *gin.Context) {
	var req CourierRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var courier models.Courier
	if err := config.DB.Where("phone = ?", req.Phone).First(&courier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found. Please verify OTP first"})
		return
	}
	if courier.IsRegistered() {
		c.JSON(http.StatusConflict, gin.H{"error": "Account already registered"})
		return
	}

	courier.Name = req.Name
	courier.Email = req.Email
	if err := config.DB.Save(&courier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete registration"})
		return
	}

	pair, err := token.IssuePair(courier.ID, models.UserTypeCourier, courier.Name, courier.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user":    courier,
	})
}

// GetCourierProfile returns the authenticated courier's profile.
func GetCourierProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.GetCourier(c)})
}
