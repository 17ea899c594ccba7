// Package config loads payment service settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/launchpad-payments/internal/notifier"
	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/internal/payment/provider"
	"github.com/tair/launchpad-payments/pkg/database"
)

// Config is the complete runtime configuration of the payment and notifier services
type Config struct {
	ServiceName  string
	Environment  string
	LogLevel     string
	HTTPPort     string
	JaegerURL    string
	Version      string
	JWTSecret    string
	RedisAddr    string
	KafkaBrokers []string
	KafkaGroupID string
	Database     database.Config
	Provider     provider.Config
	Checkout     domain.CheckoutSettings
	RateLimitMax int
	RateLimitWin time.Duration
	// TrustedProxies are CIDRs or IPs allowed to set X-Forwarded-For.
	TrustedProxies []string
	AllowedOrigin  []string
	SMTP           notifier.SMTPConfig
	MailFrom       string
}

// IsDevelopment reports whether console logging should be used
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads a .env file when present and then the process environment
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "payment-service"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		HTTPPort:     getEnv("HTTP_PORT", "8083"),
		JaegerURL:    getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		Version:      getEnv("SERVICE_VERSION", "1.0.0"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		KafkaBrokers: getEnvList("KAFKA_BROKERS"),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "payment-notifier"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "paymentdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Provider: provider.Config{
			BaseURL:   getEnv("PROVIDER_BASE_URL", "https://api.razorpay.com"),
			KeyID:     getEnv("PROVIDER_KEY_ID", ""),
			KeySecret: getEnv("PROVIDER_KEY_SECRET", ""),
			Timeout:   getEnvDuration("PROVIDER_TIMEOUT", 10*time.Second),
		},
		Checkout: domain.CheckoutSettings{
			Currency:      getEnv("PAYMENT_CURRENCY", "INR"),
			DefaultAmount: getEnvInt64("DEFAULT_AMOUNT", 4999),
		},
		RateLimitMax:   int(getEnvInt64("RATE_LIMIT_MAX", 30)),
		RateLimitWin:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustedProxies: getEnvList("TRUSTED_PROXIES"),
		AllowedOrigin:  getEnvListDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		SMTP: notifier.SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnv("SMTP_PORT", "1025"),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			TLSMode:  getEnv("SMTP_TLS_MODE", ""),
		},
		MailFrom: getEnv("MAIL_FROM", "billing@launchpad.local"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvList(key string) []string {
	return getEnvListDefault(key, nil)
}

func getEnvListDefault(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
