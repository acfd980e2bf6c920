package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"foodondoor-backend/config"
	"foodondoor-backend/geo"
	"foodondoor-backend/models"
	"foodondoor-backend/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns open, active restaurants. When lat and lon query
// params are given, results carry a distance_km field and are sorted nearest
// first; an optional radius_km filters them.
func ListRestaurants(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true)
	if c.Query("include_closed") != "true" {
		query = query.Where("is_open = ?", true)
	}
	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine_type = ?", cuisine)
	}

	var vendors []models.Vendor
	if err := query.Find(&vendors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusOK, gin.H{"count": len(vendors), "restaurants": vendors})
		return
	}

	type nearbyVendor struct {
		models.Vendor
		DistanceKM float64 `json:"distance_km"`
	}

	radius := 0.0
	if r, err := strconv.ParseFloat(c.Query("radius_km"), 64); err == nil {
		radius = r
	}

	nearby := make([]nearbyVendor, 0, len(vendors))
	for _, v := range vendors {
		d := geo.Haversine(lat, lon, v.Latitude, v.Longitude)
		if radius > 0 && d > radius {
			continue
		}
		nearby = append(nearby, nearbyVendor{Vendor: v, DistanceKM: d})
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKM < nearby[j].DistanceKM })

	c.JSON(http.StatusOK, gin.H{"count": len(nearby), "restaurants": nearby})
}

// GetRestaurant returns one restaurant with its active menus and available items.
func GetRestaurant(c *gin.Context) {
	var vendor models.Vendor
	err := config.DB.
		Preload("Menus", "is_active = ?", true).
		Preload("Menus.Items", "is_available = ?", true).
		Where("vendor_id = ? AND is_active = ?", c.Param("vendorID"), true).
		First(&vendor).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": vendor})
}

// GetOrderStateInfo exposes the order status flow for client apps.
func GetOrderStateInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":      []models.OrderStatus{models.StatusPlaced, models.StatusAccepted, models.StatusPreparing, models.StatusReadyForPickup, models.StatusPickedUp, models.StatusDelivered, models.StatusCancelled},
		"transitions": statemachine.GetAllTransitions(),
	})
}
