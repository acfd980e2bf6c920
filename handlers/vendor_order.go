package handlers

import (
	"net/http"

	"foodondoor-backend/config"
	"foodondoor-backend/middleware"
	"foodondoor-backend/models"
	"foodondoor-backend/permissions"
	"foodondoor-backend/statemachine"

	"github.com/gin-gonic/gin"
)

// ListVendorOrders returns the vendor's orders, optionally filtered by
// status, with a per-status summary for the dashboard.
func ListVendorOrders(c *gin.Context) {
	vendor := middleware.GetVendor(c)

	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Customer").Preload("Courier").
		Where("vendor_id = ?", vendor.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    vendor.RestaurantName,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetVendorOrder returns one of the vendor's orders by order number.
func GetVendorOrder(c *gin.Context) {
	vendor := middleware.GetVendor(c)

	var order models.Order
	if err := config.DB.Preload("Items").Preload("Customer").Preload("Courier").
		Where("order_number = ?", c.Param("orderNumber")).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if !permissions.CanWrite(vendor, &order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus handles the vendor's state transitions.
func UpdateOrderStatus(c *gin.Context) {
	vendor := middleware.GetVendor(c)

	var order models.Order
	if err := config.DB.Where("order_number = ?", c.Param("orderNumber")).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if !permissions.CanWrite(vendor, &order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorVendor); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.OrderNumber,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

// ListNotifications returns the vendor's notifications, newest first.
func ListNotifications(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	var notifications []models.Notification
	config.DB.Where("vendor_id = ?", vendor.ID).
		Order("created_at desc").
		Find(&notifications)

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(notifications),
		"unread":        unread,
		"notifications": notifications,
	})
}

// MarkNotificationRead flags one owned notification as read.
func MarkNotificationRead(c *gin.Context) {
	vendor := middleware.GetVendor(c)

	var notification models.Notification
	if err := config.DB.First(&notification, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	if !permissions.CanWrite(vendor, &notification) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This notification does not belong to you"})
		return
	}
	if err := config.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// EarningsSummary totals the vendor's delivered orders.
func EarningsSummary(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	total, count, err := Orders.EarningsSummary(vendor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute earnings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant":       vendor.RestaurantName,
		"delivered_orders": count,
		"total_earnings":   total,
	})
}

// OrderFeed upgrades to a websocket that streams the vendor's new orders.
func OrderFeed(c *gin.Context) {
	vendor := middleware.GetVendor(c)
	Hub.Serve(vendor.ID, c.Writer, c.Request)
}
