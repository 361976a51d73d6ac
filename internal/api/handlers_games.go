// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/indiescout/internal/discovery"
	"github.com/tomtom215/indiescout/internal/validation"
)

// RandomGame handles GET /api/games/random.
//
// Query: genres (JSON array of slugs), minRating (0-100), minReviews,
// minReleaseYear (1990-2030), independentOnly (accepted, always true).
func (h *Handler) RandomGame(w http.ResponseWriter, r *http.Request) {
	filters, err := discovery.ParseFilters(r.URL.Query())
	if err != nil {
		respondServiceError(w, r, err, msgRandomGameFailed)
		return
	}

	game, err := h.games.RandomGame(r.Context(), filters)
	if err != nil {
		respondServiceError(w, r, err, msgRandomGameFailed)
		return
	}
	respondJSON(w, http.StatusOK, game)
}

// GameDetails handles GET /api/games/{id}.
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	game, err := h.games.GameDetail(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, msgGameDetailsFailed)
		return
	}
	respondJSON(w, http.StatusOK, game)
}

// Recommendations handles GET /api/games/{id}/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	recs, err := h.games.Recommendations(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, msgRecommendFailed)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// Genres handles GET /api/genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.games.Genres(r.Context())
	if err != nil {
		respondServiceError(w, r, err, msgGenresFailed)
		return
	}
	respondJSON(w, http.StatusOK, genres)
}

// gameIDParam reads and validates {id}. It writes a 400 and returns false
// for anything that is not a numeric id or a slug.
func gameIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if verr := validation.ValidateVar("id", id, "required,gameid"); verr != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidGameID, "Invalid game id", verr)
		return "", false
	}
	return id, true
}
