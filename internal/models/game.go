// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package models

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Genre is a RAWG genre. games_count and image_background are only set on
// the /genres listing.
type Genre struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	GamesCount      int    `json:"games_count,omitempty"`
	ImageBackground string `json:"image_background,omitempty"`
}

// Tag is a RAWG user tag such as "indie" or "pixel-graphics".
type Tag struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Language string `json:"language,omitempty"`
}

// Developer is a studio credited on a game. Only present on detail records.
type Developer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Platform identifies a RAWG platform.
type Platform struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PlatformEntry wraps a platform the way RAWG nests it.
type PlatformEntry struct {
	Platform Platform `json:"platform"`
}

// GameSummary is one game from a RAWG /games listing. The decoded fields
// drive filtering; the original upstream JSON is kept and written back
// unchanged when the game is returned to a client.
type GameSummary struct {
	ID              int             `json:"id"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Released        string          `json:"released,omitempty"`
	BackgroundImage string          `json:"background_image,omitempty"`
	Rating          float64         `json:"rating"`
	RatingsCount    int             `json:"ratings_count"`
	Metacritic      *int            `json:"metacritic,omitempty"`
	Genres          []Genre         `json:"genres"`
	Platforms       []PlatformEntry `json:"platforms,omitempty"`
	Tags            []Tag           `json:"tags,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the summary and retains the raw document.
func (g *GameSummary) UnmarshalJSON(data []byte) error {
	type plain GameSummary
	if err := json.Unmarshal(data, (*plain)(g)); err != nil {
		return err
	}
	g.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the upstream document when one was decoded.
//
//nolint:gocritic // value receiver so both GameSummary and *GameSummary marshal raw
func (g GameSummary) MarshalJSON() ([]byte, error) {
	if len(g.raw) > 0 {
		return g.raw, nil
	}
	type plain GameSummary
	return json.Marshal(plain(g))
}

// ReleaseYear returns the year of the release date, or 0 when unknown.
func (g *GameSummary) ReleaseYear() int {
	return releaseYear(g.Released)
}

// RatingPercent converts the 0-5 user rating to the 0-100 scale used by
// filters.
func (g *GameSummary) RatingPercent() int {
	return ratingPercent(g.Rating)
}

// GameDetail is a RAWG /games/{id} record.
type GameDetail struct {
	ID              int             `json:"id"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	DescriptionRaw  string          `json:"description_raw,omitempty"`
	Released        string          `json:"released,omitempty"`
	BackgroundImage string          `json:"background_image,omitempty"`
	Website         string          `json:"website,omitempty"`
	Rating          float64         `json:"rating"`
	RatingsCount    int             `json:"ratings_count"`
	Metacritic      *int            `json:"metacritic,omitempty"`
	Genres          []Genre         `json:"genres"`
	Platforms       []PlatformEntry `json:"platforms,omitempty"`
	Tags            []Tag           `json:"tags,omitempty"`
	Developers      []Developer     `json:"developers,omitempty"`
	Publishers      []Developer     `json:"publishers,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the detail and retains the raw document.
func (g *GameDetail) UnmarshalJSON(data []byte) error {
	type plain GameDetail
	if err := json.Unmarshal(data, (*plain)(g)); err != nil {
		return err
	}
	g.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the upstream document when one was decoded.
//
//nolint:gocritic // value receiver so both GameDetail and *GameDetail marshal raw
func (g GameDetail) MarshalJSON() ([]byte, error) {
	if len(g.raw) > 0 {
		return g.raw, nil
	}
	type plain GameDetail
	return json.Marshal(plain(g))
}

// ReleaseYear returns the year of the release date, or 0 when unknown.
func (g *GameDetail) ReleaseYear() int {
	return releaseYear(g.Released)
}

// RatingPercent converts the 0-5 user rating to the 0-100 scale.
func (g *GameDetail) RatingPercent() int {
	return ratingPercent(g.Rating)
}

// Page is a RAWG paginated listing.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// GamePage is a /games listing.
type GamePage = Page[GameSummary]

// GenrePage is a /genres listing.
type GenrePage = Page[Genre]

// releaseYear reads the year from a YYYY-MM-DD date.
func releaseYear(released string) int {
	if len(released) < 4 {
		return 0
	}
	year, err := strconv.Atoi(released[:4])
	if err != nil {
		return 0
	}
	return year
}

func ratingPercent(rating float64) int {
	return int(math.Round(rating * 20))
}
