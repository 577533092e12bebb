package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	RedisAddr   string
	Env         string

	// Availability engine settings
	SlotGranularityHours int
	StoreTimeout         time.Duration
	CommitTimeout        time.Duration
	PendingTTL           time.Duration

	// Rate limiting (requests per minute per IP)
	QueryRateLimit int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "solid_secret_key"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		Env:         getEnv("APP_ENV", "development"),

		SlotGranularityHours: getEnvInt("SLOT_GRANULARITY_HOURS", 1),
		StoreTimeout:         time.Duration(getEnvInt("STORE_TIMEOUT_SECONDS", 5)) * time.Second,
		CommitTimeout:        time.Duration(getEnvInt("COMMIT_TIMEOUT_SECONDS", 10)) * time.Second,
		PendingTTL:           time.Duration(getEnvInt("PENDING_TTL_MINUTES", 30)) * time.Minute,

		QueryRateLimit: getEnvInt("QUERY_RATE_LIMIT", 120),
	}

	if AppConfig.SlotGranularityHours < 1 {
		log.Fatal("SLOT_GRANULARITY_HOURS must be a positive number of hours")
	}
}

// IsProduction reports whether the app runs with a production config
func IsProduction() bool {
	return AppConfig != nil && AppConfig.Env == "production"
}

// getEnv fetches an environment variable or falls back to a default
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt fetches an integer environment variable or falls back to a default
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Warning: invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}
