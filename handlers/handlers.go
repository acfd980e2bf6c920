package handlers

import (
	"foodondoor-backend/cache"
	"foodondoor-backend/config"
	"foodondoor-backend/geo"
	"foodondoor-backend/models"
	"foodondoor-backend/otp"
	"foodondoor-backend/realtime"
	"foodondoor-backend/services"
	"foodondoor-backend/sms"

	"gorm.io/gorm"
)

// Shared collaborators, wired once at startup.
var (
	OTP       *otp.Manager
	SMS       sms.Sender
	Carts     *services.CartService
	Orders    *services.OrderService
	Addresses *services.AddressService
	Quoter    *geo.FeeQuoter
	Hub       *realtime.Hub
)

// Init builds the handler collaborators from configuration. Call after
// config.InitDB.
func Init(db *gorm.DB) {
	OTP = otp.NewManager(cache.NewMemoryStore(), config.OTPTTL, config.OTPResendAfter, config.OTPMaxAttempts)
	SMS = sms.ConsoleSender{}
	Hub = realtime.NewHub()
	Carts = services.NewCartService(db)
	Addresses = services.NewAddressService(db)
	Quoter = &geo.FeeQuoter{
		Geocoder: geo.NewNominatimClient(config.GeocoderBaseURL, config.GeocoderTimeout),
		Schedule: geo.FeeSchedule{
			BaseFee:      config.DeliveryBaseFee,
			FreeRadiusKM: config.DeliveryFreeKM,
			PerKMRate:    config.DeliveryPerKMRate,
		},
		Country: config.GeocoderCountry,
	}
	Orders = &services.OrderService{
		DB:                db,
		Quoter:            Quoter,
		DefaultETAMinutes: config.DefaultETAMinutes,
		Notify: func(order *models.Order) {
			Hub.Broadcast(order.VendorID, order)
		},
	}
}
