package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read in this package only.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External data provider
	Provider ProviderConfig

	// Database (analysis snapshot store)
	Database DatabaseConfig

	// Watchlist (scheduled re-analysis)
	Watchlist WatchlistConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// ProviderConfig holds market data provider configuration
type ProviderConfig struct {
	BaseURL        string
	QuoteURL       string
	UserAgent      string
	Timeout        time.Duration
	MaxConcurrency int
	RequestsPerSec float64
	BenchmarkIndex string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// WatchlistConfig holds the watchlist refresh settings
type WatchlistConfig struct {
	Tickers  []string
	Schedule string // cron spec, with seconds field
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Provider: ProviderConfig{
			BaseURL:        getEnv("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com"),
			QuoteURL:       getEnv("PROVIDER_QUOTE_URL", "https://finance.yahoo.com"),
			UserAgent:      getEnv("PROVIDER_USER_AGENT", "Mozilla/5.0 (compatible; stock-comparer/1.0)"),
			Timeout:        getEnvAsDuration("PROVIDER_TIMEOUT", "15s"),
			MaxConcurrency: getEnvAsInt("PROVIDER_MAX_CONCURRENCY", 4),
			RequestsPerSec: getEnvAsFloat("PROVIDER_REQUESTS_PER_SEC", 2.0),
			BenchmarkIndex: getEnv("PROVIDER_BENCHMARK_INDEX", "^GSPC"),
		},

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		Watchlist: WatchlistConfig{
			Tickers:  getEnvAsList("WATCHLIST_TICKERS", ""),
			Schedule: getEnv("WATCHLIST_SCHEDULE", "0 0 * * * *"), // hourly
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are consistent
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Provider.MaxConcurrency < 1 {
		return fmt.Errorf("PROVIDER_MAX_CONCURRENCY must be at least 1")
	}

	if c.Provider.RequestsPerSec <= 0 {
		return fmt.Errorf("PROVIDER_REQUESTS_PER_SEC must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		fallback, _ := time.ParseDuration(defaultValue)
		return fallback
	}

	return value
}

// getEnvAsList parses a comma-separated environment variable
func getEnvAsList(key, defaultValue string) []string {
	valueStr := getEnv(key, defaultValue)
	if valueStr == "" {
		return nil
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.ToUpper(trimmed))
		}
	}
	return out
}
