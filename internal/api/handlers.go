// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package api

import (
	"context"
	"time"

	"github.com/tomtom215/indiescout/internal/discovery"
	"github.com/tomtom215/indiescout/internal/models"
)

// GameService is the discovery API the handlers call.
type GameService interface {
	RandomGame(ctx context.Context, f models.GameFilters) (*models.GameSummary, error)
	GameDetail(ctx context.Context, id string) (*models.GameDetail, error)
	Recommendations(ctx context.Context, id string) (*models.Recommendations, error)
	Genres(ctx context.Context) ([]models.Genre, error)
}

var _ GameService = (*discovery.Service)(nil)

// BreakerStater reports the upstream circuit breaker state. It is
// implemented by rawg.CircuitBreakerClient.
type BreakerStater interface {
	BreakerState() string
}

// Handler serves the HTTP API.
type Handler struct {
	games     GameService
	breaker   BreakerStater // nil when the breaker is disabled
	version   string
	startTime time.Time
}

// NewHandler creates a handler over games. breaker may be nil.
func NewHandler(games GameService, breaker BreakerStater, version string) *Handler {
	return &Handler{
		games:     games,
		breaker:   breaker,
		version:   version,
		startTime: time.Now(),
	}
}
