// Package config loads and validates the environment-driven configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Aggregator (Plaid)
	PlaidClientID   string
	PlaidSecret     string
	PlaidEnv        string
	PlaidClientName string
	PlaidUserID     string

	// Data source selection
	DataSource string // "plaid" or "memory"

	// Pipeline
	CacheTTL        time.Duration
	FetchWindowDays int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		PlaidClientID:   getEnv("PLAID_CLIENT_ID", ""),
		PlaidSecret:     getEnv("PLAID_SECRET", ""),
		PlaidEnv:        getEnv("PLAID_ENV", "sandbox"),
		PlaidClientName: getEnv("PLAID_CLIENT_NAME", "Longevity Finance"),
		PlaidUserID:     getEnv("PLAID_USER_ID", "user-123"),

		DataSource: getEnv("DATA_SOURCE", "memory"),

		CacheTTL:        getEnvDuration("CACHE_TTL", 30*time.Second),
		FetchWindowDays: getEnvInt("FETCH_WINDOW_DAYS", 90),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataSource {
	case "memory":
	case "plaid":
		if c.PlaidClientID == "" {
			errs = append(errs, "PLAID_CLIENT_ID is required when using the plaid data source")
		}
		if c.PlaidSecret == "" {
			errs = append(errs, "PLAID_SECRET is required when using the plaid data source")
		}
		if c.PlaidEnv != "sandbox" && c.PlaidEnv != "production" {
			errs = append(errs, fmt.Sprintf("invalid plaid env '%s': must be 'sandbox' or 'production'", c.PlaidEnv))
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid data source '%s': must be one of [memory plaid]", c.DataSource))
	}

	if c.CacheTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	} else if c.CacheTTL > time.Hour {
		errs = append(errs, fmt.Sprintf("invalid cache TTL %v: must be at most 1 hour", c.CacheTTL))
	}

	if c.FetchWindowDays < 1 || c.FetchWindowDays > 365 {
		errs = append(errs, fmt.Sprintf("invalid fetch window %d days: must be between 1 and 365", c.FetchWindowDays))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
