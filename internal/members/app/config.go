package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer          string        // Issuer claim for access tokens (default: flock)
	DatabaseFile    string        // Path to SQLite database file (default: ./flock.db)
	TokenSecretFile string        // Path to HS256 signing secret file (default: ./token_secret)
	PepperFile      string        // Path to password hashing pepper file (default: ./pepper)
	AccessTTL       time.Duration // Access token lifetime (default: 15m)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:          getEnvOrDefault("FLOCK_ISSUER", "flock"),
		DatabaseFile:    getEnvOrDefault("FLOCK_DATABASE_FILE", "flock.db"),
		TokenSecretFile: getEnvOrDefault("FLOCK_TOKEN_SECRET_FILE", "token_secret"),
		PepperFile:      getEnvOrDefault("FLOCK_PEPPER_FILE", "pepper"),
		AccessTTL:       getEnvDurationOrDefault("FLOCK_ACCESS_TTL", 15*time.Minute),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
