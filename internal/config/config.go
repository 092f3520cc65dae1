// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	StorageBackend string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	SQLitePath     string

	AutoclickerTick time.Duration
	WorkerCount     int
	ClickRateLimit  float64
	ClickRateBurst  int
	PlayerCacheSize int
	PlayerCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:          getEnv("API_KEY", ""),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:     getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:         getEnv("VERSION", "dev"),
		StorageBackend:  strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "fruitclicker"),
		DBMaxConns:      getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		SQLitePath:      getEnv("SQLITE_PATH", DefaultSQLitePath),
		AutoclickerTick: getEnvAsDuration("AUTOCLICKER_TICK", DefaultAutoclickerTick),
		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		ClickRateLimit:  getEnvAsFloat("CLICK_RATE_LIMIT", DefaultClickRateLimit),
		ClickRateBurst:  getEnvAsInt("CLICK_RATE_BURST", DefaultClickRateBurst),
		PlayerCacheSize: getEnvAsInt("PLAYER_CACHE_SIZE", DefaultPlayerCacheSize),
		PlayerCacheTTL:  getEnvAsDuration("PLAYER_CACHE_TTL", DefaultPlayerCacheTTL),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no safe fallback
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch c.StorageBackend {
	case StorageBackendPostgres, StorageBackendSQLite:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageBackendPostgres, StorageBackendSQLite, c.StorageBackend)
	}
	if c.StorageBackend == StorageBackendSQLite && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH must be set when STORAGE_BACKEND is %q", StorageBackendSQLite)
	}
	if c.AutoclickerTick < 0 {
		return fmt.Errorf("AUTOCLICKER_TICK must not be negative")
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_COUNT must be positive, got %d", c.WorkerCount)
	}
	if c.ClickRateLimit <= 0 || c.ClickRateBurst <= 0 {
		return fmt.Errorf("CLICK_RATE_LIMIT and CLICK_RATE_BURST must be positive")
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
