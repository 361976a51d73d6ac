// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

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

// DefaultConfigPaths lists config file locations, first match wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/indiescout/config.yaml",
	"/etc/indiescout/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultMajorPublishers is the built-in developer denylist.
var DefaultMajorPublishers = []string{
	"Electronic Arts",
	"Ubisoft",
	"Activision",
	"Blizzard",
	"Take-Two Interactive",
	"2K Games",
	"Rockstar Games",
	"Square Enix",
	"Sony Interactive Entertainment",
	"Microsoft Game Studios",
	"Nintendo",
	"Bandai Namco",
	"Capcom",
	"SEGA",
	"THQ Nordic",
	"Warner Bros. Interactive",
	"505 Games",
	"Focus Home Interactive",
	"Devolver Digital",
}

func defaultConfig() *Config {
	return &Config{
		RAWG: RAWGConfig{
			BaseURL:           "https://api.rawg.io/api",
			Timeout:           30 * time.Second,
			PlatformID:        4,
			RequestsPerSecond: 5,
			Burst:             10,
			CircuitBreaker:    true,
		},
		Discovery: DiscoveryConfig{
			DefaultReleaseYear: 2015,
			DetailFanout:       15,
			DetailConcurrency:  5,
			MinIndieMatches:    1,
			MajorPublishers:    append([]string(nil), DefaultMajorPublishers...),
			Recommend: RecommendConfig{
				StartYear:     2015,
				EndYear:       2024,
				MinMetacritic: 70,
				PageSize:      4,
				TopTags:       3,
			},
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        3000,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads defaults, then the optional YAML file, then
// environment variables, and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"discovery.major_publishers",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		if parts := splitList(strVal); len(parts) > 0 {
			if err := k.Set(path, parts); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envMappings maps environment variable names (lowercased) to config paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"rawg_api_key":             "rawg.api_key",
	"rawg_base_url":            "rawg.base_url",
	"rawg_timeout":             "rawg.timeout",
	"rawg_platform_id":         "rawg.platform_id",
	"rawg_requests_per_second": "rawg.requests_per_second",
	"rawg_burst":               "rawg.burst",
	"rawg_circuit_breaker":     "rawg.circuit_breaker",

	"discovery_default_year":       "discovery.default_release_year",
	"discovery_detail_fanout":      "discovery.detail_fanout",
	"discovery_detail_concurrency": "discovery.detail_concurrency",
	"discovery_min_indie_matches":  "discovery.min_indie_matches",
	"major_publishers":             "discovery.major_publishers",
	"publishers_file":              "discovery.publishers_file",
	"recommend_start_year":         "discovery.recommend.start_year",
	"recommend_end_year":           "discovery.recommend.end_year",
	"recommend_min_metacritic":     "discovery.recommend.min_metacritic",
	"recommend_page_size":          "discovery.recommend.page_size",
	"recommend_top_tags":           "discovery.recommend.top_tags",

	"http_port":    "server.port",
	"port":         "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// LoadPublishersFile reads a YAML publisher list of the form
//
//	publishers:
//	  - Electronic Arts
//	  - Ubisoft
func LoadPublishersFile(path string) ([]string, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load publishers file %s: %w", path, err)
	}
	if !k.Exists("publishers") {
		return nil, fmt.Errorf("publishers file %s has no publishers key", path)
	}
	names := make([]string, 0)
	for _, name := range k.Strings("publishers") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// PublishersWatcher watches a publishers file and reports every successful
// reload. Close stops the underlying fsnotify watcher.
type PublishersWatcher struct {
	provider *file.File
}

// WatchPublishersFile calls onChange with the new list each time the file
// changes and parses. Reload failures go to onError and leave the previous
// list in place.
func WatchPublishersFile(path string, onChange func([]string), onError func(error)) (*PublishersWatcher, error) {
	provider := file.Provider(path)
	err := provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			onError(fmt.Errorf("publishers file watch: %w", err))
			return
		}
		names, err := LoadPublishersFile(path)
		if err != nil {
			onError(err)
			return
		}
		onChange(names)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch publishers file %s: %w", path, err)
	}
	return &PublishersWatcher{provider: provider}, nil
}

// Close stops watching.
func (w *PublishersWatcher) Close() error {
	return w.provider.Unwatch()
}
