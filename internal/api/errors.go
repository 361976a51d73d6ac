// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/indiescout/internal/discovery"
)

// Client-facing messages.
const (
	msgNoGamesFound      = "No games found matching your criteria. Try adjusting your filters."
	msgGameNotFound      = "Game not found"
	msgRandomGameFailed  = "Failed to fetch random game. Please try again."
	msgGameDetailsFailed = "Failed to fetch game details"
	msgRecommendFailed   = "Failed to fetch recommendations"
	msgGenresFailed      = "Failed to fetch genres"
)

// respondServiceError maps a discovery error to a status code. Anything
// unrecognized is a 500 with fallback as the message; upstream detail only
// reaches the log.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var filtersErr *discovery.InvalidFiltersError
	switch {
	case errors.As(err, &filtersErr):
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidFilters, filtersErr.Message, err)
	case errors.Is(err, discovery.ErrNoGamesFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNoGamesFound, msgNoGamesFound, nil)
	case errors.Is(err, discovery.ErrGameNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgGameNotFound, nil)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeUpstreamError, fallback, err)
	}
}
