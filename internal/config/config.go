package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the travel time service.
// It includes the environment, server port, geocoding provider selection,
// API key, number of workers, retry policy, polling interval, and database
// configuration.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP/monitoring server.
// - ProviderType: The type of geocoding provider to use (google, nominatim).
// - APIKey: The API key for the Google geocoding and routing services.
// - Workers: The number of concurrent workers for processing estimates.
// - MaxAttempts: Remote calls per operation before giving up (default 1, no retry).
// - Interval: The duration between queue polling intervals.
// - Database: Configuration settings for the PostgreSQL database.
// - AddrPrefix: Address prefix prepended for more accurate geocoding.
type Config struct {
	Env          string         // Env is the current environment: local, development, production.
	Port         int            // Port is the HTTP server port.
	ProviderType string         // ProviderType specifies which geocoding provider to use.
	APIKey       string         // The API key for accessing the Google Maps services.
	Workers      int            // The number of concurrent workers for processing estimates.
	MaxAttempts  int            // MaxAttempts is the number of attempts per remote call.
	Interval     time.Duration  // The duration between queue polling intervals.
	Database     PostgresConfig // Database holds the postgres database configuration.
	AddrPrefix   string         // Address prefix for more accurate geocoding.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config
// struct. A .env file is honored when present. It panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(envOrDefault("TRAVELTIME_INTERVAL", "10m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(envOrDefault("TRAVELTIME_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for the HTTP server from configuration")
	}

	workers, err := strconv.Atoi(envOrDefault("TRAVELTIME_WORKERS", "10"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer")
	}

	// Remote calls are single-shot unless explicitly configured otherwise.
	maxAttempts, err := strconv.Atoi(envOrDefault("TRAVELTIME_MAX_ATTEMPTS", "1"))
	if err != nil {
		panic("failed to parse max attempts from configuration, must be an integer")
	}

	return &Config{
		Env:          envOrDefault("TRAVELTIME_ENV", "production"),
		AddrPrefix:   envOrDefault("TRAVELTIME_ADDRESS_PREFIX", ""),
		Port:         healthPort,
		ProviderType: envOrDefault("TRAVELTIME_PROVIDER_TYPE", "google"),
		APIKey:       os.Getenv("TRAVELTIME_PROVIDER_KEY"),
		Workers:      workers,
		MaxAttempts:  maxAttempts,
		Interval:     interval,
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func envOrDefault(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
