package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"foodondoor-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "foodondoor_super_secret_2024"))

// Token lifetimes. Access tokens are short-lived, refresh tokens long-lived.
var (
	AccessTokenTTL  = getDuration("ACCESS_TOKEN_TTL", 30*time.Minute)
	RefreshTokenTTL = getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour)
)

// OTP settings: one live code per phone, short re-issue window, few attempts.
var (
	OTPTTL         = getDuration("OTP_TTL", 5*time.Minute)
	OTPResendAfter = getDuration("OTP_RESEND_AFTER", 60*time.Second)
	OTPMaxAttempts = getInt("OTP_MAX_ATTEMPTS", 3)
)

// Delivery fee schedule: flat base fee within the free radius, then a
// per-km rate on the distance beyond it.
var (
	DeliveryBaseFee   = getDecimal("DELIVERY_BASE_FEE", "20.0")
	DeliveryFreeKM    = getFloat("DELIVERY_FREE_KM", 5.0)
	DeliveryPerKMRate = getDecimal("DELIVERY_PER_KM_RATE", "5.0")
	GeocoderBaseURL   = getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	GeocoderTimeout   = getDuration("GEOCODER_TIMEOUT", 8*time.Second)
	GeocoderCountry   = getEnv("GEOCODER_COUNTRY", "India")
	DefaultETAMinutes = getInt("DEFAULT_ETA_MINUTES", 30)
)

// Load reads the .env file if present; real env vars win over file values.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using default %v", key, fallback)
	}
	return fallback
}

func getDecimal(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
		log.Printf("Invalid decimal for %s, using default %s", key, fallback)
	}
	d, _ := decimal.NewFromString(fallback)
	return d
}

func InitDB() {
	var err error
	dbPath := getEnv("DB_PATH", "foodondoor.db")
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Vendor{},
		&models.Menu{},
		&models.FoodListing{},
		&models.Customer{},
		&models.Courier{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
