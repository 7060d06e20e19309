package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port               string
	DBPath             string
	JWTSecret          string
	GinMode            string
	PaymentProviderURL string
	PaymentAPIKey      string
	RefundGraceWindow  time.Duration // 0 = refunds have no time limit
	AllowAdminOrders   bool
}

// Load reads .env if present, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "homechef.db"),
		JWTSecret:          getEnv("JWT_SECRET", "homechef_super_secret_2024"),
		GinMode:            getEnv("GIN_MODE", ""),
		PaymentProviderURL: getEnv("PAYMENT_PROVIDER_URL", ""),
		PaymentAPIKey:      getEnv("PAYMENT_API_KEY", ""),
		RefundGraceWindow:  getDuration("REFUND_GRACE_WINDOW", 0),
		AllowAdminOrders:   getBool("ALLOW_ADMIN_ORDERS", false),
	}
}

// NewLogger builds the process-wide structured logger. The lifecycle core
// itself never logs; handlers and main do.
func NewLogger(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
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
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
