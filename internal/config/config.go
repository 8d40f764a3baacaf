package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	GinMode         string
	PostgresDSN     string // empty -> in-memory stores
	StripeSecretKey string // empty -> payments run degraded
	AdminEmail      string
	ProcessingDelay time.Duration
	ShippingDelay   time.Duration
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] %s=%q is not a duration, using %s", k, v, def)
		return def
	}
	return d
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:            getenv("STOREFRONT_ADDR", ":8080"),
		GinMode:         getenv("GIN_MODE", "debug"),
		PostgresDSN:     getenv("POSTGRES_DSN", ""),
		StripeSecretKey: getenv("STRIPE_SECRET_KEY", ""),
		AdminEmail:      getenv("ADMIN_EMAIL", ""),
		ProcessingDelay: getduration("DEMO_PROCESSING_DELAY", 30*time.Second),
		ShippingDelay:   getduration("DEMO_SHIPPING_DELAY", 2*time.Minute),
	}
	log.Printf("[config] STOREFRONT_ADDR=%s", cfg.Addr)
	log.Printf("[config] POSTGRES_DSN set=%t", cfg.PostgresDSN != "")
	log.Printf("[config] STRIPE_SECRET_KEY set=%t", cfg.StripeSecretKey != "")
	return cfg
}
