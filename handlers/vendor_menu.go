package handlers

import (
	"net/http"

	"foodondoor-backend/config"
	"foodondoor-backend/middleware"
	"foodondoor-backend/models"
	"foodondoor-backend/permissions"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Menu Management ─────────────────────────────────────────────────────────

type MenuRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ListMenus returns the vendor's own menus with items.
func ListMenus(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	var menus []models.Menu
	config.DB.Preload("Items").
		Where("vendor_id = ?", vendor.ID).
		Order("name asc").
		Find(&menus)
	c.JSON(http.StatusOK, gin.H{"count": len(menus), "menus": menus})
}

// CreateMenu adds a menu. Menu names are unique per vendor.
func CreateMenu(c *gin.Context) {
	vendor := middleware.GetVendor(c)

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu := models.Menu{
		VendorID:    vendor.ID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A menu with this name already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu created", "menu": menu})
}

func loadMenu(c *gin.Context) (*models.Menu, bool) {
	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("menuId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return nil, false
	}
	return &menu, true
}

// UpdateMenu modifies a menu the vendor owns. A menu owned by another
// vendor is Forbidden, not hidden: the catalog is public anyway.
func UpdateMenu(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	menu, ok := loadMenu(c)
	if !ok {
		return
	}
	if !permissions.CanWrite(vendor, menu) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu"})
		return
	}

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	menu.Name = req.Name
	menu.Description = req.Description
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if err := config.DB.Save(menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu updated", "menu": menu})
}

// DeleteMenu removes a menu and its listings.
func DeleteMenu(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	menu, ok := loadMenu(c)
	if !ok {
		return
	}
	if !permissions.CanWrite(vendor, menu) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.FoodListing{}).Error; err != nil {
			return err
		}
		return tx.Delete(menu).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
}

// ── Food Listings ───────────────────────────────────────────────────────────

type FoodListingRequest struct {
	MenuID      uint            `json:"menu_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category"`
	IsAvailable *bool           `json:"is_available"`
}

// CreateFoodListing adds an item under one of the vendor's menus. The
// listing's vendor is derived from the menu, never from the client.
func CreateFoodListing(c *gin.Context) {
	vendor := middleware.GetVendor(c)

	var req FoodListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() || req.Price.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, req.MenuID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	if !permissions.CanWrite(vendor, &menu) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu"})
		return
	}

	listing := models.FoodListing{
		MenuID:      menu.ID,
		VendorID:    menu.VendorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}
	if err := config.DB.Create(&listing).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An item with this name already exists on the menu"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added", "item": listing})
}

func loadListing(c *gin.Context) (*models.FoodListing, bool) {
	var listing models.FoodListing
	if err := config.DB.Preload("Menu").First(&listing, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return nil, false
	}
	return &listing, true
}

// UpdateFoodListing modifies an item, resolving ownership through the
// parent menu when the direct vendor link is unset.
func UpdateFoodListing(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	listing, ok := loadListing(c)
	if !ok {
		return
	}
	if !permissions.CanWrite(vendor, listing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this item"})
		return
	}

	var req struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		Category    *string          `json:"category"`
		IsAvailable *bool            `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil {
		listing.Name = *req.Name
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() || req.Price.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
			return
		}
		listing.Price = *req.Price
	}
	if req.Category != nil {
		listing.Category = *req.Category
	}
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}
	if err := config.DB.Save(listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "item": listing})
}

// DeleteFoodListing removes an item.
func DeleteFoodListing(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	listing, ok := loadListing(c)
	if !ok {
		return
	}
	if !permissions.CanWrite(vendor, listing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this item"})
		return
	}
	if err := config.DB.Delete(listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
