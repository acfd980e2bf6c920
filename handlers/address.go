package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"foodondoor-backend/middleware"
	"foodondoor-backend/models"
	"foodondoor-backend/services"

	"github.com/gin-gonic/gin"
)

type AddressRequest struct {
	AddressLine1 string `json:"address_line_1" binding:"required"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
	IsDefault    bool   `json:"is_default"`
}

// ListAddresses returns the customer's address book, default first.
func ListAddresses(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	addresses, err := Addresses.List(customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load addresses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(addresses), "addresses": addresses})
}

// AddAddress saves a new address for the customer.
func AddAddress(c *gin.Context) {
	customer := middleware.GetCustomer(c)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := models.Address{
		CustomerID:   customer.ID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		IsDefault:    req.IsDefault,
	}
	if err := Addresses.Create(&address); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address added", "address": address})
}

// UpdateAddress modifies an owned address.
func UpdateAddress(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := Addresses.Update(customer.ID, uint(addressID), func(a *models.Address) {
		a.AddressLine1 = req.AddressLine1
		a.AddressLine2 = req.AddressLine2
		a.City = req.City
		a.State = req.State
		a.Pincode = req.Pincode
		a.IsDefault = req.IsDefault
	})
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

// DeleteAddress removes an owned address.
func DeleteAddress(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return
	}

	if err := Addresses.Delete(customer.ID, uint(addressID)); err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
