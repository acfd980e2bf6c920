package routes

import (
	"foodondoor-backend/handlers"
	"foodondoor-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// OTP login per role
		public.POST("/customer/auth/send-otp", handlers.SendCustomerOTP)
		public.POST("/customer/auth/verify-otp", handlers.VerifyCustomerOTP)
		public.POST("/customer/auth/signup", handlers.CustomerSignup)

		public.POST("/vendor/auth/send-otp", handlers.SendVendorOTP)
		public.POST("/vendor/auth/verify-otp", handlers.VerifyVendorOTP)
		public.POST("/vendor/auth/register", handlers.RegisterVendor)

		public.POST("/delivery/auth/send-otp", handlers.SendCourierOTP)
		public.POST("/delivery/auth/verify-otp", handlers.VerifyCourierOTP)
		public.POST("/delivery/auth/register", handlers.RegisterCourier)

		public.POST("/auth/refresh", handlers.RefreshToken)

		// Restaurant discovery (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:vendorID", handlers.GetRestaurant)

		// Order status flow (great for docs/Postman)
		public.GET("/order-states", handlers.GetOrderStateInfo)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.CustomerAuth())
	{
		customer.GET("/profile", handlers.GetCustomerProfile)

		customer.GET("/addresses", handlers.ListAddresses)
		customer.POST("/addresses", handlers.AddAddress)
		customer.PUT("/addresses/:id", handlers.UpdateAddress)
		customer.DELETE("/addresses/:id", handlers.DeleteAddress)

		customer.GET("/cart", handlers.GetCart)
		customer.POST("/cart/items", handlers.AddToCart)
		customer.PUT("/cart/items/:itemId", handlers.UpdateCartItem)
		customer.DELETE("/cart/items/:itemId", handlers.RemoveCartItem)
		customer.DELETE("/cart", handlers.ClearCart)

		customer.POST("/delivery-fee", handlers.QuoteDeliveryFee)
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:orderNumber", handlers.GetOrderDetail)
		customer.PUT("/orders/:orderNumber/cancel", handlers.CancelOrder)
	}

	// ── Vendor routes ──────────────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(middleware.VendorAuth())
	{
		vendor.GET("/profile", handlers.GetVendorProfile)
		vendor.PUT("/profile", handlers.UpdateVendorProfile)
		vendor.PUT("/fcm-token", handlers.UpdateFCMToken)

		// Menu management
		vendor.GET("/menus", handlers.ListMenus)
		vendor.POST("/menus", handlers.CreateMenu)
		vendor.PUT("/menus/:menuId", handlers.UpdateMenu)
		vendor.DELETE("/menus/:menuId", handlers.DeleteMenu)
		vendor.POST("/items", handlers.CreateFoodListing)
		vendor.PUT("/items/:itemId", handlers.UpdateFoodListing)
		vendor.DELETE("/items/:itemId", handlers.DeleteFoodListing)

		// Order management
		vendor.GET("/orders", handlers.ListVendorOrders)
		vendor.GET("/orders/feed", handlers.OrderFeed)
		vendor.GET("/orders/:orderNumber", handlers.GetVendorOrder)
		vendor.PUT("/orders/:orderNumber/status", handlers.UpdateOrderStatus)

		vendor.GET("/notifications", handlers.ListNotifications)
		vendor.PUT("/notifications/:id/read", handlers.MarkNotificationRead)
		vendor.GET("/earnings", handlers.EarningsSummary)
	}

	// ── Courier routes ─────────────────────────────────────────────
	courier := r.Group("/api/delivery")
	courier.Use(middleware.CourierAuth())
	{
		courier.GET("/profile", handlers.GetCourierProfile)
		courier.GET("/orders/available", handlers.GetAvailableOrders)
		courier.GET("/orders/my-deliveries", handlers.GetMyDeliveries)
		courier.PUT("/orders/:orderNumber/pickup", handlers.PickupOrder)
		courier.PUT("/orders/:orderNumber/deliver", handlers.DeliverOrder)
	}
}
