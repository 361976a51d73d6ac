// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/tomtom215/indiescout/internal/models"
	"github.com/tomtom215/indiescout/internal/rawg"
)

// fakeCatalog answers ListGames per ladder stage and GetGame from a map.
type fakeCatalog struct {
	mu sync.Mutex

	stageResults map[Stage][]models.GameSummary
	stageErrors  map[Stage]error
	listResult   *models.GamePage // used when stageResults has no entry
	listErr      error
	details      map[string]*models.GameDetail
	detailErrs   map[string]error
	genres       []models.Genre
	genresErr    error

	listCalls   []*rawg.GameQuery
	detailCalls []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		stageResults: make(map[Stage][]models.GameSummary),
		stageErrors:  make(map[Stage]error),
		details:      make(map[string]*models.GameDetail),
		detailErrs:   make(map[string]error),
	}
}

// stageOf recognizes which ladder rung produced q.
func stageOf(q *rawg.GameQuery) Stage {
	if len(q.Tags) == 1 && q.Tags[0] == indieTagSlug {
		if q.RatingsCount == 1 {
			return StageIndieRelaxed
		}
		return StageIndieTag
	}
	if q.PageSize == fallbackPageSize {
		return StageFallbackGeneral
	}
	return StagePrimary
}

func (f *fakeCatalog) ListGames(_ context.Context, q *rawg.GameQuery) (*models.GamePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, q)

	if f.listResult != nil || f.listErr != nil {
		return f.listResult, f.listErr
	}
	stage := stageOf(q)
	if err := f.stageErrors[stage]; err != nil {
		return nil, err
	}
	results := f.stageResults[stage]
	return &models.GamePage{Count: len(results), Results: results}, nil
}

func (f *fakeCatalog) GetGame(_ context.Context, id string) (*models.GameDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, id)

	if err := f.detailErrs[id]; err != nil {
		return nil, err
	}
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return nil, &rawg.UpstreamError{Op: "get_game", StatusCode: 404, Body: `{"detail":"Not found."}`}
}

func (f *fakeCatalog) ListGenres(_ context.Context) (*models.GenrePage, error) {
	if f.genresErr != nil {
		return nil, f.genresErr
	}
	return &models.GenrePage{Count: len(f.genres), Results: f.genres}, nil
}

func (f *fakeCatalog) listStages() []Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Stage, len(f.listCalls))
	for i, q := range f.listCalls {
		out[i] = stageOf(q)
	}
	return out
}

func (f *fakeCatalog) detailCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.detailCalls)
}

// game builds a summary released in year with a 0-5 rating.
func game(id, year int, rating float64, ratingsCount int, tags ...string) models.GameSummary {
	g := models.GameSummary{
		ID:           id,
		Slug:         "game-" + strconv.Itoa(id),
		Name:         fmt.Sprintf("Game %d", id),
		Released:     fmt.Sprintf("%d-06-15", year),
		Rating:       rating,
		RatingsCount: ratingsCount,
	}
	for i, t := range tags {
		g.Tags = append(g.Tags, models.Tag{ID: 1000 + i, Name: t, Slug: t})
	}
	return g
}

func detail(id int, developers ...string) *models.GameDetail {
	d := &models.GameDetail{ID: id, Name: fmt.Sprintf("Game %d", id)}
	for i, name := range developers {
		d.Developers = append(d.Developers, models.Developer{ID: 500 + i, Name: name})
	}
	return d
}

func intPtr(n int) *int { return &n }

func ids(games []models.GameSummary) map[int]bool {
	out := make(map[int]bool, len(games))
	for i := range games {
		out[games[i].ID] = true
	}
	return out
}

// sequence returns an intn that yields picks in order, then 0.
func sequence(picks ...int) func(int) int {
	var mu sync.Mutex
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		if len(picks) == 0 {
			return 0
		}
		p := picks[0]
		picks = picks[1:]
		return p % n
	}
}
