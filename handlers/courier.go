package handlers

import (
	"net/http"

	"foodondoor-backend/config"
	"foodondoor-backend/middleware"
	"foodondoor-backend/models"
	"foodondoor-backend/statemachine"

	"github.com/gin-gonic/gin"
)

// GetAvailableOrders shows ReadyForPickup orders with no courier assigned.
func GetAvailableOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Vendor").Preload("Customer").
		Where("status = ? AND courier_id IS NULL", models.StatusReadyForPickup).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetMyDeliveries returns all orders assigned to the logged-in courier.
func GetMyDeliveries(c *gin.Context) {
	courier := middleware.GetCourier(c)
	var orders []models.Order
	config.DB.Preload("Items").Preload("Vendor").Preload("Customer").
		Where("courier_id = ?", courier.ID).
		Order("updated_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// PickupOrder assigns the order to the courier and transitions
// ReadyForPickup → PickedUp.
func PickupOrder(c *gin.Context) {
	courier := middleware.GetCourier(c)

	var order models.Order
	if err := config.DB.Where("order_number = ?", c.Param("orderNumber")).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// Prevent two couriers picking up the same order
	if order.CourierID != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been picked up by another courier"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusPickedUp, statemachine.ActorCourier); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	// The guard above and this conditional write together keep two
	// concurrent pickups from both claiming the order.
	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND courier_id IS NULL", order.ID).
		Updates(map[string]interface{}{
			"status":     models.StatusPickedUp,
			"courier_id": courier.ID,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been picked up by another courier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order picked up successfully",
		"order_id": order.OrderNumber,
		"status":   models.StatusPickedUp,
	})
}

// DeliverOrder transitions PickedUp → Delivered for the assigned courier.
func DeliverOrder(c *gin.Context) {
	courier := middleware.GetCourier(c)

	var order models.Order
	if err := config.DB.Where("order_number = ?", c.Param("orderNumber")).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.CourierID == nil || *order.CourierID != courier.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the assigned courier for this order"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusDelivered, statemachine.ActorCourier); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", models.StatusDelivered).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered successfully! 🎉",
		"order_id": order.OrderNumber,
		"status":   models.StatusDelivered,
	})
}
