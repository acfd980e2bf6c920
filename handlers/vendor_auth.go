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

// SendVendorOTP issues a login code to a registered vendor phone.
func SendVendorOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("phone = ?", req.Phone).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No vendor account for this phone"})
		return
	}
	if !vendor.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account is inactive"})
		return
	}
	issueOTP(c, req.Phone)
}

// VerifyVendorOTP verifies the code and returns a vendor token pair.
func VerifyVendorOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := OTP.Verify(req.Phone, req.OTP); err != nil {
		c.JSON(otpStatus(err), gin.H{"error": err.Error()})
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("phone = ? AND is_active = ?", req.Phone, true).
		First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor account not found or disabled"})
		return
	}

	pair, err := token.IssuePair(strconv.FormatUint(uint64(vendor.ID), 10),
		models.UserTypeVendor, vendor.RestaurantName, vendor.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"vendor":  vendor,
	})
}

type VendorRegisterRequest struct {
	Phone          string  `json:"phone" binding:"required,min=10,max=15"`
	OTP            string  `json:"otp" binding:"required,len=6"`
	RestaurantName string  `json:"restaurant_name" binding:"required"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Address        string  `json:"address" binding:"required"`
	Pincode        string  `json:"pincode" binding:"required"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CuisineType    string  `json:"cuisine_type"`
	OpenHours      string  `json:"open_hours"`
}

// RegisterVendor verifies a fresh OTP, creates the vendor and returns a
// token pair. The external vendor id is assigned on create.
func RegisterVendor(c *gin.Context) {
	var req VendorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := OTP.Verify(req.Phone, req.OTP); err != nil {
		c.JSON(otpStatus(err), gin.H{"error": err.Error()})
		return
	}

	var existing models.Vendor
	if err := config.DB.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Phone number already registered"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check registration"})
		return
	}

	vendor := models.Vendor{
		Phone:          req.Phone,
		RestaurantName: req.RestaurantName,
		Email:          req.Email,
		Address:        req.Address,
		Pincode:        req.Pincode,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		CuisineType:    req.CuisineType,
		OpenHours:      req.OpenHours,
		IsOpen:         true,
		IsActive:       true,
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	pair, err := token.IssuePair(strconv.FormatUint(uint64(vendor.ID), 10),
		models.UserTypeVendor, vendor.RestaurantName, vendor.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vendor registered successfully",
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"vendor":  vendor,
	})
}

// GetVendorProfile returns the authenticated vendor's profile.
func GetVendorProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vendor": middleware.GetVendor(c)})
}

// UpdateVendorProfile updates safe fields on the vendor's own record.
func UpdateVendorProfile(c *gin.Context) {
	vendor := middleware.GetVendor(c)

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{
		"restaurant_name": true, "email": true, "address": true,
		"pincode": true, "latitude": true, "longitude": true,
		"cuisine_type": true, "open_hours": true, "is_open": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(vendor).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "vendor": vendor})
}

type FCMTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// UpdateFCMToken stores the vendor's device token for push notifications.
func UpdateFCMToken(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	var req FCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Model(vendor).Update("fcm_token", req.Token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device token updated"})
}
