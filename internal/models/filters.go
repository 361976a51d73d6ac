// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package models

// GameFilters are the caller's constraints for a random game. A nil bound
// means "no lower bound", never zero.
type GameFilters struct {
	Genres          []string `json:"genres,omitempty" validate:"omitempty,max=20,dive,slug"`
	MinRating       *int     `json:"minRating,omitempty" validate:"omitnil,min=0,max=100"`
	MinReviews      *int     `json:"minReviews,omitempty" validate:"omitnil,min=0"`
	MinReleaseYear  *int     `json:"minReleaseYear,omitempty" validate:"omitnil,min=1990,max=2030"`
	IndependentOnly bool     `json:"independentOnly"`
}

// SimilarityBasis names what a recommendation set has in common with the
// source game.
type SimilarityBasis struct {
	Genres     []string `json:"genres"`
	Tags       []string `json:"tags"`
	Developers []string `json:"developers"`
}

// Recommendations is the /recommendations response body.
type Recommendations struct {
	Results           []GameSummary   `json:"results"`
	SimilarityFactors SimilarityBasis `json:"similarityFactors"`
}
