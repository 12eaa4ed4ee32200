package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is built once at startup and
// passed by reference to the components that need it; business code must not
// read the environment directly.
type Config struct {
	Port string `validate:"required"`

	// CORS
	CORSOrigins []string `validate:"min=1,dive,required"`

	// SMTP transport (Brevo relay by default)
	SMTPHost     string
	SMTPPort     int `validate:"min=1,max=65535"`
	SMTPUsername string
	SMTPPassword string
	// EmailFrom must be a sender address verified with the relay
	EmailFrom     string `validate:"omitempty,email"`
	EmailFromName string
	// EmailTo is the business inbox that receives owner notifications
	EmailTo string `validate:"omitempty,email"`

	// Rate limiting: RateLimitPoints submissions per window
	RateLimitPoints        int `validate:"min=1"`
	RateLimitWindowSeconds int `validate:"min=1"`

	// Optional Redis backend for the rate limiter. When empty the limiter is
	// in-memory and process-local.
	RedisURL string

	// TrustProxy controls whether the client IP is taken from the first
	// X-Forwarded-For entry. Enable only behind a proxy that sets it.
	TrustProxy bool
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when no .env file exists.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:3000")),

		SMTPHost:      getEnv("EMAIL_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnvInt("EMAIL_PORT", 587),
		SMTPUsername:  getEnv("EMAIL_USER", ""),
		SMTPPassword:  getEnv("EMAIL_PASS", ""),
		EmailFrom:     getEnv("EMAIL_FROM", ""),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Orivanta Contact Form"),
		EmailTo:       getEnv("EMAIL_TO", ""),

		RateLimitPoints:        getEnvInt("RATE_LIMIT_MAX", 5),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW", 900),

		RedisURL: getEnv("REDIS_URL", ""),

		TrustProxy: getEnvBool("TRUST_PROXY", false),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
