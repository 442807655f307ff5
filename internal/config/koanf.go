// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Package config loads service configuration in three layers:
// struct defaults, an optional YAML file, then environment variables.
// Later layers override earlier ones.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the root service configuration.
type Config struct {
	HTTP      HTTPConfig      `koanf:"http"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Search    SearchConfig    `koanf:"search"`
	Pricing   PricingConfig   `koanf:"pricing"`
}

// HTTPConfig controls the API server.
type HTTPConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// DatabaseConfig controls the DuckDB store.
type DatabaseConfig struct {
	Path          string `koanf:"path"`
	MaxMemory     string `koanf:"max_memory"`
	Threads       int    `koanf:"threads"`
	MaxOpenConns  int    `koanf:"max_open_conns"`
	SeedOnStartup bool   `koanf:"seed_on_startup"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `koanf:"level"`
	Format        string `koanf:"format"` // "json" or "console"
	IncludeCaller bool   `koanf:"include_caller"`
}

// CORSConfig controls cross-origin access.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// RateLimitConfig controls per-IP request throttling.
type RateLimitConfig struct {
	RequestsPerMinute      int `koanf:"requests_per_minute"`
	WriteRequestsPerMinute int `koanf:"write_requests_per_minute"`
}

// SearchConfig carries search defaults surfaced to clients via the
// bootstrap config endpoint.
type SearchConfig struct {
	DefaultLatitude    float64 `koanf:"default_latitude"`
	DefaultLongitude   float64 `koanf:"default_longitude"`
	DefaultRadiusMiles float64 `koanf:"default_radius_miles"`
	DefaultPageSize    int     `koanf:"default_page_size"`
	MaxPageSize        int     `koanf:"max_page_size"`
	DefaultSortBy      string  `koanf:"default_sort_by"`
	DefaultSortOrder   string  `koanf:"default_sort_order"`
	Timezone           string  `koanf:"timezone"`
}

// PricingConfig describes the price-ceiling slider offered to clients.
type PricingConfig struct {
	MinPrice int `koanf:"min_price"`
	MaxPrice int `koanf:"max_price"`
	Step     int `koanf:"step"`
}

// Options returns the selectable price ceilings, e.g. [5 10 15 20 25 30].
func (p PricingConfig) Options() []int {
	if p.Step <= 0 || p.MaxPrice < p.MinPrice {
		return nil
	}
	var options []int
	for v := p.MinPrice; v <= p.MaxPrice; v += p.Step {
		options = append(options, v)
	}
	return options
}

// defaultConfig returns the built-in defaults. Bozeman, MT is the
// fallback search location.
func defaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:          "data/dietprefs.db",
			MaxMemory:     "512MB",
			Threads:       0, // 0 means NumCPU
			MaxOpenConns:  8,
			SeedOnStartup: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute:      300,
			WriteRequestsPerMinute: 60,
		},
		Search: SearchConfig{
			DefaultLatitude:    45.6770,
			DefaultLongitude:   -111.0429,
			DefaultRadiusMiles: 10.0,
			DefaultPageSize:    10,
			MaxPageSize:        100,
			DefaultSortBy:      "item_count",
			DefaultSortOrder:   "desc",
			Timezone:           "America/Denver",
		},
		Pricing: PricingConfig{
			MinPrice: 5,
			MaxPrice: 30,
			Step:     5,
		},
	}
}

// configSearchPaths are tried in order when no explicit path is given.
var configSearchPaths = []string{
	"config.yaml",
	"config/config.yaml",
	"/etc/dietprefs/config.yaml",
}

// envMappings translates environment variable names to koanf keys.
// Only listed variables are consulted; everything else in the
// environment is ignored.
var envMappings = map[string]string{
	"HTTP_HOST":                 "http.host",
	"HTTP_PORT":                 "http.port",
	"HTTP_READ_TIMEOUT":         "http.read_timeout",
	"HTTP_WRITE_TIMEOUT":        "http.write_timeout",
	"HTTP_SHUTDOWN_TIMEOUT":     "http.shutdown_timeout",
	"DUCKDB_PATH":               "database.path",
	"DUCKDB_MAX_MEMORY":         "database.max_memory",
	"DUCKDB_THREADS":            "database.threads",
	"DUCKDB_MAX_OPEN_CONNS":     "database.max_open_conns",
	"SEED_ON_STARTUP":           "database.seed_on_startup",
	"LOG_LEVEL":                 "logging.level",
	"LOG_FORMAT":                "logging.format",
	"LOG_CALLER":                "logging.include_caller",
	"CORS_ORIGINS":              "cors.allowed_origins",
	"RATE_LIMIT_PER_MINUTE":     "rate_limit.requests_per_minute",
	"RATE_LIMIT_WRITE_PER_MIN":  "rate_limit.write_requests_per_minute",
	"SEARCH_DEFAULT_LATITUDE":   "search.default_latitude",
	"SEARCH_DEFAULT_LONGITUDE":  "search.default_longitude",
	"SEARCH_DEFAULT_RADIUS":     "search.default_radius_miles",
	"SEARCH_DEFAULT_PAGE_SIZE":  "search.default_page_size",
	"SEARCH_MAX_PAGE_SIZE":      "search.max_page_size",
	"SEARCH_DEFAULT_SORT_BY":    "search.default_sort_by",
	"SEARCH_DEFAULT_SORT_ORDER": "search.default_sort_order",
	"SEARCH_TIMEZONE":           "search.timezone",
}

// sliceConfigKeys are env-provided values split on commas.
var sliceConfigKeys = map[string]bool{
	"cors.allowed_origins": true,
}

// Load builds the configuration from defaults, an optional YAML file
// and environment variables, then validates the result. configPath may
// be empty, in which case the standard locations are searched.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path := findConfigFile(configPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	processSliceFields(k, &cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the first readable config file, or "" when
// none exists. An explicit path that cannot be read is not an error
// here; Load surfaces it when the provider fails.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range configSearchPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// envTransform maps environment variable names through envMappings.
// Returning "" drops the variable.
func envTransform(key string) string {
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}

// processSliceFields re-reads comma-separated env values into slice
// fields, since the env provider delivers them as single strings.
func processSliceFields(k *koanf.Koanf, cfg *Config) {
	for key := range sliceConfigKeys {
		raw := k.String(key)
		if raw == "" || !strings.Contains(raw, ",") {
			continue
		}
		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}
		if key == "cors.allowed_origins" {
			cfg.CORS.AllowedOrigins = values
		}
	}
}

// Validate checks cross-field constraints that koanf cannot express.
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.Search.DefaultPageSize < 1 || c.Search.DefaultPageSize > c.Search.MaxPageSize {
		return fmt.Errorf("invalid page size defaults: default %d, max %d",
			c.Search.DefaultPageSize, c.Search.MaxPageSize)
	}
	if c.Search.DefaultRadiusMiles <= 0 {
		return fmt.Errorf("default search radius must be positive, got %f", c.Search.DefaultRadiusMiles)
	}
	switch c.Search.DefaultSortBy {
	case "rating", "distance", "item_count":
	default:
		return fmt.Errorf("invalid default sort key %q", c.Search.DefaultSortBy)
	}
	switch c.Search.DefaultSortOrder {
	case "asc", "desc":
	default:
		return fmt.Errorf("invalid default sort order %q", c.Search.DefaultSortOrder)
	}
	if _, err := time.LoadLocation(c.Search.Timezone); err != nil {
		return fmt.Errorf("invalid search timezone %q: %w", c.Search.Timezone, err)
	}
	return nil
}

// Location resolves the configured search timezone. Validate has
// already confirmed it parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Search.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
