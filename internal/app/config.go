package app

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultBaseURL points at the hosted StudIA mobile API.
const DefaultBaseURL = "https://studia-8dmp.onrender.com/api/mobile"

type Config struct {
	BaseURL       string        // Backend base URL (default: hosted instance)
	Tenant        string        // Optional: default tenant schema when none is persisted
	DataDir       string        // Directory for credentials and the device key (default: ~/.studia)
	StoreDriver   string        // Credential store driver (file, sqlite) (default: file)
	Timeout       time.Duration // Request timeout ceiling (default: 15s)
	RatePerSecond int           // Optional: client-side request throttle (0 = off)
	Env           string        // Environment (dev, prod) (default: prod)
	LogLevel      string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat     string        // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	cfg := Config{
		BaseURL:       getEnvOrDefault("STUDIA_API_BASE_URL", DefaultBaseURL),
		Tenant:        os.Getenv("STUDIA_TENANT"),
		DataDir:       getEnvOrDefault("STUDIA_DATA_DIR", defaultDataDir()),
		StoreDriver:   getEnvOrDefault("STUDIA_STORE", "file"),
		Timeout:       getEnvDurationOrDefault("STUDIA_HTTP_TIMEOUT", 15*time.Second),
		RatePerSecond: getEnvIntOrDefault("STUDIA_RATE_LIMIT", 0),
		Env:           getEnvOrDefault("ENV", "prod"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "text"),
	}

	return cfg
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studia"
	}
	return filepath.Join(home, ".studia")
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

	// Plain integers are taken as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
