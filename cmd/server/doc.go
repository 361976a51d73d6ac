// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

/*
Package main is the entry point for the Indiescout server.

Indiescout sits between a front end and the RAWG game catalog. It picks a
random highly rated PC game from independent developers, and serves game
details, genre lists and "similar games" recommendations.

# Application Architecture

The process is supervised with Suture v4:

	RootSupervisor ("indiescout")
	├── ConfigSupervisor ("config-layer")
	│   └── Publishers file watcher (when PUBLISHERS_FILE is set)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog, with an slog bridge for the supervisor
 3. RAWG client: rate paced, optionally behind a circuit breaker
 4. Discovery service: query ladder, selector and recommender
 5. HTTP server: Chi router with CORS, rate limiting and Prometheus metrics

# Configuration

The only required setting is RAWG_API_KEY. Commonly used variables:

	RAWG_API_KEY          RAWG API key (required)
	HTTP_PORT / PORT      listen port (default 3000)
	DISCOVERY_DEFAULT_YEAR release year used when none is requested (2015)
	MAJOR_PUBLISHERS      comma-separated developer denylist
	PUBLISHERS_FILE       YAML denylist, reloaded on change
	LOG_LEVEL, LOG_FORMAT zerolog level and json|console output

# Endpoints

	GET /api/games/random
	GET /api/games/{id}
	GET /api/games/{id}/recommendations
	GET /api/genres
	GET /api/health/live
	GET /api/health/ready
	GET /metrics

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to 10 seconds.

# Example Usage

	export RAWG_API_KEY=your-key
	export LOG_FORMAT=console
	./indiescout
*/
package main
