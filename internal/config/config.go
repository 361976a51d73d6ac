// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2), later sources override earlier ones:
//  1. Built-in defaults
//  2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/indiescout/config.yaml)
//  3. Environment variables
//
// Config is immutable after Load and safe for concurrent reads. The major
// publisher denylist is the one value that changes at runtime; it is held
// by the discovery package, not here.
type Config struct {
	RAWG      RAWGConfig      `koanf:"rawg"`
	Discovery DiscoveryConfig `koanf:"discovery"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// RAWGConfig configures the upstream game catalog client.
type RAWGConfig struct {
	BaseURL    string        `koanf:"base_url"`
	APIKey     string        `koanf:"api_key"`
	Timeout    time.Duration `koanf:"timeout"`
	PlatformID int           `koanf:"platform_id"` // 4 = PC

	// RequestsPerSecond paces outbound calls; 0 disables pacing.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	CircuitBreaker bool `koanf:"circuit_breaker"`
}

// DiscoveryConfig tunes the random-game pipeline.
type DiscoveryConfig struct {
	// DefaultReleaseYear is used when the caller gives no minReleaseYear.
	DefaultReleaseYear int `koanf:"default_release_year"`

	// DetailFanout bounds how many general candidates get a developer lookup.
	DetailFanout int `koanf:"detail_fanout"`

	// DetailConcurrency bounds concurrent developer lookups.
	DetailConcurrency int `koanf:"detail_concurrency"`

	// MinIndieMatches is how many filter-satisfying games an indie stage must
	// return before the selector stops escalating.
	MinIndieMatches int `koanf:"min_indie_matches"`

	// MajorPublishers is the initial developer denylist.
	MajorPublishers []string `koanf:"major_publishers"`

	// PublishersFile optionally points at a YAML file ("publishers: [...]")
	// that replaces MajorPublishers and is reloaded when it changes.
	PublishersFile string `koanf:"publishers_file"`

	Recommend RecommendConfig `koanf:"recommend"`
}

// RecommendConfig is the fixed window used for similar-game queries.
type RecommendConfig struct {
	StartYear     int `koanf:"start_year"`
	EndYear       int `koanf:"end_year"`
	MinMetacritic int `koanf:"min_metacritic"`
	PageSize      int `koanf:"page_size"`
	TopTags       int `koanf:"top_tags"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// SecurityConfig holds CORS and inbound rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config for file and env loading.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether ENVIRONMENT is set to production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
