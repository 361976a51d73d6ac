// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and in range.
func (c *Config) Validate() error {
	if err := c.validateRAWG(); err != nil {
		return err
	}
	if err := c.validateDiscovery(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRAWG() error {
	if strings.TrimSpace(c.RAWG.APIKey) == "" {
		return fmt.Errorf("RAWG_API_KEY is required")
	}
	if isPlaceholder(c.RAWG.APIKey) {
		return fmt.Errorf("RAWG_API_KEY contains a placeholder value, set a real key")
	}
	if err := validateBaseURL(c.RAWG.BaseURL, "RAWG_BASE_URL"); err != nil {
		return fmt.Errorf("RAWG_BASE_URL is invalid: %w", err)
	}
	if c.RAWG.Timeout <= 0 {
		return fmt.Errorf("RAWG_TIMEOUT must be positive")
	}
	if c.RAWG.PlatformID < 1 {
		return fmt.Errorf("RAWG_PLATFORM_ID must be a positive platform id")
	}
	if c.RAWG.RequestsPerSecond < 0 {
		return fmt.Errorf("RAWG_REQUESTS_PER_SECOND must not be negative")
	}
	if c.RAWG.RequestsPerSecond > 0 && c.RAWG.Burst < 1 {
		return fmt.Errorf("RAWG_BURST must be at least 1 when pacing is enabled")
	}
	return nil
}

// Release years accepted by the filter validator.
const (
	MinReleaseYear = 1990
	MaxReleaseYear = 2030
)

func (c *Config) validateDiscovery() error {
	d := c.Discovery
	if d.DefaultReleaseYear < MinReleaseYear || d.DefaultReleaseYear > MaxReleaseYear {
		return fmt.Errorf("DISCOVERY_DEFAULT_YEAR must be between %d and %d", MinReleaseYear, MaxReleaseYear)
	}
	if d.DetailFanout < 0 || d.DetailFanout > 100 {
		return fmt.Errorf("DISCOVERY_DETAIL_FANOUT must be between 0 and 100")
	}
	if d.DetailConcurrency < 1 {
		return fmt.Errorf("DISCOVERY_DETAIL_CONCURRENCY must be at least 1")
	}
	if d.MinIndieMatches < 1 {
		return fmt.Errorf("DISCOVERY_MIN_INDIE_MATCHES must be at least 1")
	}
	if len(d.MajorPublishers) == 0 && d.PublishersFile == "" {
		return fmt.Errorf("MAJOR_PUBLISHERS or PUBLISHERS_FILE must name at least one publisher")
	}

	r := d.Recommend
	if r.StartYear > r.EndYear {
		return fmt.Errorf("RECOMMEND_START_YEAR must not be after RECOMMEND_END_YEAR")
	}
	if r.MinMetacritic < 0 || r.MinMetacritic > 100 {
		return fmt.Errorf("RECOMMEND_MIN_METACRITIC must be between 0 and 100")
	}
	if r.PageSize < 1 || r.PageSize > 40 {
		return fmt.Errorf("RECOMMEND_PAGE_SIZE must be between 1 and 40")
	}
	if r.TopTags < 0 {
		return fmt.Errorf("RECOMMEND_TOP_TAGS must not be negative")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

var placeholderPatterns = []string{
	"REPLACE",
	"CHANGE_ME",
	"CHANGEME",
	"your_api_key",
	"<api-key>",
}

func isPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, p := range placeholderPatterns {
		if strings.Contains(upper, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}

// HasWildcardCORS reports whether any CORS origin is "*". The API is
// unauthenticated, so main only warns about it in production.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
