// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

/*
Package config loads and validates Indiescout configuration.

Values are layered with Koanf v2: built-in defaults, then an optional YAML
file, then environment variables. The result is validated once at startup
and treated as read-only afterwards.

# Environment Variables

RAWG upstream:
  - RAWG_API_KEY: API key sent as the key query parameter (required)
  - RAWG_BASE_URL: catalog base URL (default: https://api.rawg.io/api)
  - RAWG_TIMEOUT: per-request timeout (default: 30s)
  - RAWG_PLATFORM_ID: platform constraint for every query (default: 4, PC)
  - RAWG_REQUESTS_PER_SECOND, RAWG_BURST: outbound pacing (default: 5, 10)
  - RAWG_CIRCUIT_BREAKER: wrap the client in a circuit breaker (default: true)

Discovery:
  - DISCOVERY_DEFAULT_YEAR: year used when minReleaseYear is absent (default: 2015)
  - DISCOVERY_DETAIL_FANOUT: general candidates checked for developers (default: 15)
  - DISCOVERY_DETAIL_CONCURRENCY: concurrent developer lookups (default: 5)
  - DISCOVERY_MIN_INDIE_MATCHES: matches an indie stage needs (default: 1)
  - MAJOR_PUBLISHERS: comma-separated developer denylist
  - PUBLISHERS_FILE: YAML file replacing the denylist, reloaded on change
  - RECOMMEND_START_YEAR, RECOMMEND_END_YEAR, RECOMMEND_MIN_METACRITIC,
    RECOMMEND_PAGE_SIZE, RECOMMEND_TOP_TAGS: similar-game query window

Server and security:
  - HTTP_HOST, HTTP_PORT (or PORT), HTTP_TIMEOUT, ENVIRONMENT
  - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example config.yaml

	rawg:
	  api_key: "..."
	discovery:
	  default_release_year: 2018
	  publishers_file: /etc/indiescout/publishers.yaml
	server:
	  port: 3000
*/
package config
