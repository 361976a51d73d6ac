// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"context"

	"github.com/tomtom215/indiescout/internal/models"
	"github.com/tomtom215/indiescout/internal/rawg"
)

// Catalog is the upstream game catalog. *rawg.Client and
// *rawg.CircuitBreakerClient both satisfy it.
type Catalog interface {
	ListGames(ctx context.Context, q *rawg.GameQuery) (*models.GamePage, error)
	GetGame(ctx context.Context, id string) (*models.GameDetail, error)
	ListGenres(ctx context.Context) (*models.GenrePage, error)
}

var (
	_ Catalog = (*rawg.Client)(nil)
	_ Catalog = (*rawg.CircuitBreakerClient)(nil)
)
