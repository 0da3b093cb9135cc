package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "PLAID_CLIENT_ID", "PLAID_SECRET", "PLAID_ENV",
		"PLAID_CLIENT_NAME", "PLAID_USER_ID", "DATA_SOURCE",
		"CACHE_TTL", "FETCH_WINDOW_DAYS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.DataSource != "memory" {
		t.Errorf("DataSource = %q, want memory", cfg.DataSource)
	}
	if cfg.PlaidEnv != "sandbox" {
		t.Errorf("PlaidEnv = %q, want sandbox", cfg.PlaidEnv)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.CacheTTL)
	}
	if cfg.FetchWindowDays != 90 {
		t.Errorf("FetchWindowDays = %d, want 90", cfg.FetchWindowDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_SOURCE", "plaid")
	t.Setenv("PLAID_CLIENT_ID", "cid")
	t.Setenv("PLAID_SECRET", "sec")
	t.Setenv("CACHE_TTL", "45s")
	t.Setenv("FETCH_WINDOW_DAYS", "30")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DataSource != "plaid" {
		t.Errorf("DataSource = %q", cfg.DataSource)
	}
	if cfg.CacheTTL != 45*time.Second {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.FetchWindowDays != 30 {
		t.Errorf("FetchWindowDays = %d", cfg.FetchWindowDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config must validate, got %v", err)
	}
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("FETCH_WINDOW_DAYS", "ninety")

	cfg := Load()

	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want default 30s", cfg.CacheTTL)
	}
	if cfg.FetchWindowDays != 90 {
		t.Errorf("FetchWindowDays = %d, want default 90", cfg.FetchWindowDays)
	}
}

func TestValidateErrors(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:            "8000",
			DataSource:      "memory",
			PlaidEnv:        "sandbox",
			CacheTTL:        30 * time.Second,
			FetchWindowDays: 90,
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"non-numeric port", func(c *Config) { c.Port = "eight" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "between 1 and 65535"},
		{"unknown source", func(c *Config) { c.DataSource = "csv" }, "invalid data source"},
		{"plaid without creds", func(c *Config) { c.DataSource = "plaid" }, "PLAID_CLIENT_ID is required"},
		{"plaid bad env", func(c *Config) {
			c.DataSource = "plaid"
			c.PlaidClientID = "cid"
			c.PlaidSecret = "sec"
			c.PlaidEnv = "staging"
		}, "invalid plaid env"},
		{"ttl too short", func(c *Config) { c.CacheTTL = 100 * time.Millisecond }, "at least 1 second"},
		{"ttl too long", func(c *Config) { c.CacheTTL = 2 * time.Hour }, "at most 1 hour"},
		{"window too wide", func(c *Config) { c.FetchWindowDays = 400 }, "between 1 and 365"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}
