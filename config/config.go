package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port                string
	Environment         string
	StripeSecretKey     string
	StripeWebhookSecret string
	PublicBaseURL       string
	RedisURL            string
	ManualsDir          string
	AllowedOrigins      string
	CartTTL             time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8089"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		StripeSecretKey:     os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		PublicBaseURL:       strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		RedisURL:            os.Getenv("REDIS_URL"),
		ManualsDir:          getEnv("MANUALS_DIR", "./static/manuals"),
		AllowedOrigins:      os.Getenv("ALLOWED_ORIGINS"),
		CartTTL:             time.Hour * 24 * 7, // default 7 days
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_API_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
