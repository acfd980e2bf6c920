package handlers

import (
	"net/http"
	"strconv"

	"foodondoor-backend/config"
	"foodondoor-backend/middleware"
	"foodondoor-backend/models"
	"foodondoor-backend/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SendCustomerOTP issues a login code to any phone number.
func SendCustomerOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	issueOTP(c, req.Phone)
}

// VerifyCustomerOTP verifies the code and logs an existing customer in. An
// unknown phone gets is_new_user=true and no tokens; the client follows up
// with signup.
func VerifyCustomerOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := OTP.Verify(req.Phone, req.OTP); err != nil {
		c.JSON(otpStatus(err), gin.H{"error": err.Error()})
		return
	}

	var customer models.Customer
	if err := config.DB.Where("phone = ?", req.Phone).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"is_new_user": true,
				"message":     "OTP verified. Please complete signup.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up account"})
		return
	}
	if !customer.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account is inactive"})
		return
	}

	pair, err := token.IssuePair(strconv.FormatUint(uint64(customer.ID), 10),
		models.UserTypeCustomer, customer.FullName, customer.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_new_user": false,
		"access":      pair.Access,
		"refresh":     pair.Refresh,
		"user":        customer,
	})
}

type CustomerSignupRequest struct {
	Phone    string `json:"phone" binding:"required,min=10,max=15"`
	OTP      string `json:"otp" binding:"required,len=6"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// CustomerSignup verifies a fresh OTP and creates the customer profile,
// returning a token pair. Duplicate phones are rejected.
func CustomerSignup(c *gin.Context) {
	var req CustomerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := OTP.Verify(req.Phone, req.OTP); err != nil {
		c.JSON(otpStatus(err), gin.H{"error": err.Error()})
		return
	}

	var existing models.Customer
	if err := config.DB.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Phone number already registered"})
		return
	}

	customer := models.Customer{
		Phone:    req.Phone,
		FullName: req.FullName,
		Email:    req.Email,
		IsActive: true,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	pair, err := token.IssuePair(strconv.FormatUint(uint64(customer.ID), 10),
		models.UserTypeCustomer, customer.FullName, customer.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user":    customer,
	})
}

// GetCustomerProfile returns the authenticated customer's profile.
func GetCustomerProfile(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	var withAddresses models.Customer
	if err := config.DB.Preload("Addresses").First(&withAddresses, customer.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": withAddresses})
}
