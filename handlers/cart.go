package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"foodondoor-backend/middleware"
	"foodondoor-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"omitempty,min=1"`
}

// GetCart returns the customer's cart lines with a computed subtotal.
func GetCart(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	items, err := Carts.Items(customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Food.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(items),
		"items":    items,
		"subtotal": subtotal.Round(2),
	})
}

// AddToCart upserts one line, enforcing the single-vendor invariant.
func AddToCart(c *gin.Context) {
	customer := middleware.GetCustomer(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, created, err := Carts.Add(customer.ID, req.ItemID, req.Quantity)
	switch {
	case errors.Is(err, services.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrFoodUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrMultiVendorCart):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
			"hint":  "Clear your cart to order from another restaurant",
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	message := "Item quantity updated."
	status := http.StatusOK
	if created {
		message = "Item added to cart."
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": message, "cart_item": item})
}

// Quantity is a pointer so an explicit zero (delete the line) survives the
// required check.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem sets a line's quantity; zero or negative removes the line.
func UpdateCartItem(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := Carts.UpdateQuantity(customer.ID, uint(itemID), *req.Quantity)
	if errors.Is(err, services.ErrCartItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}
	if item == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated.", "cart_item": item})
}

// RemoveCartItem deletes one line from the cart.
func RemoveCartItem(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	if err := Carts.Remove(customer.ID, uint(itemID)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart."})
}

// ClearCart empties the cart. Clearing an already-empty cart succeeds.
func ClearCart(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	if err := Carts.Clear(customer.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared."})
}
