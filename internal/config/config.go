package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Addr          string
	PostgresDSN   string
	StateDir      string
	SessionSecret string
	MetricsToken  string

	PageSize    int
	ShippingFee decimal.Decimal
	TaxRate     decimal.Decimal

	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration from the environment, with a .env file honored
// when present. Every value has a working default so the demo runs with no
// setup: seed catalog, file-backed carts, dev session secret.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          ":" + getenv("PORT", "8080"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		StateDir:      getenv("STATE_DIR", "./data"),
		SessionSecret: getenv("SESSION_SECRET", "dev-session-secret"),
		MetricsToken:  os.Getenv("METRICS_TOKEN"),
		PageSize:      getenvInt("PAGE_SIZE", 12),
		ShippingFee:   getenvDecimal("SHIPPING_FEE", "5.00"),
		TaxRate:       getenvDecimal("TAX_RATE", "0.08"),
		RateLimit:     getenvInt("RATE_LIMIT", 120),
		RateWindow:    time.Duration(getenvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDecimal(k, def string) decimal.Decimal {
	if v := os.Getenv(k); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(def)
}
