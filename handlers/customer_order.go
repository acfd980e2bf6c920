package handlers

import (
	"errors"
	"net/http"

	"foodondoor-backend/config"
	"foodondoor-backend/middleware"
	"foodondoor-backend/models"
	"foodondoor-backend/services"
	"foodondoor-backend/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	VendorID      uint   `json:"vendor_id" binding:"required"`
	AddressID     uint   `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=COD Online"`
	PaymentStatus string `json:"payment_status"`
	TxnID         string `json:"txn_id"`
}

// PlaceOrder collapses the customer's cart into an order.
func PlaceOrder(c *gin.Context) {
	customer := middleware.GetCustomer(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = "pending"
	}

	order, err := Orders.Place(customer, services.PlaceInput{
		VendorID:      req.VendorID,
		AddressID:     req.AddressID,
		PaymentMode:   models.PaymentMode(req.PaymentMethod),
		PaymentStatus: req.PaymentStatus,
		PaymentRef:    req.TxnID,
	})
	if err != nil {
		var unavailable *services.UnavailableItemsError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrVendorMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrVendorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &unavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":             unavailable.Error(),
				"unavailable_items": unavailable.Names,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":                 "Order placed successfully!",
		"order_id":                order.OrderNumber,
		"status":                  order.Status,
		"items_total":             order.ItemsSubtotal,
		"delivery_fee":            order.DeliveryFee,
		"total_amount":            order.TotalAmount,
		"estimated_delivery_time": order.EstimatedTime,
		"delivery_address":        order.DeliveryAddress,
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	var orders []models.Order
	config.DB.Preload("Items").Preload("Vendor").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns one order by order number. Orders that exist but
// belong to another customer come back as 404 to avoid leaking existence.
func GetOrderDetail(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := config.DB.Preload("Items").Preload("Vendor").Preload("Courier").
		Where("order_number = ? AND customer_id = ?", orderNumber, customer.ID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels the customer's own order while the state machine
// still allows it.
func CancelOrder(c *gin.Context) {
	customer := middleware.GetCustomer(c)
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := config.DB.
		Where("order_number = ? AND customer_id = ?", orderNumber, customer.ID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, statemachine.ActorCustomer); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.OrderNumber})
}

type DeliveryQuoteRequest struct {
	VendorID uint   `json:"vendor_id" binding:"required"`
	Pincode  string `json:"pincode" binding:"required"`
}

// QuoteDeliveryFee previews the delivery fee for a vendor and destination
// pincode before checkout.
func QuoteDeliveryFee(c *gin.Context) {
	var req DeliveryQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vendor models.Vendor
	if err := config.DB.First(&vendor, req.VendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	fee, distance := Quoter.Quote(vendor.Latitude, vendor.Longitude, req.Pincode)
	c.JSON(http.StatusOK, gin.H{
		"delivery_fee": fee,
		"distance_km":  distance,
	})
}
