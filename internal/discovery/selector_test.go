// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/tomtom215/indiescout/internal/models"
	"github.com/tomtom215/indiescout/internal/rawg"
)

func newTestSelector(catalog Catalog, denied ...string) *Selector {
	return NewSelector(catalog, NewClassifier(NewDenylist(denied)), SelectorOptions{
		DetailFanout:      15,
		DetailConcurrency: 4,
		MinIndieMatches:   1,
	})
}

func selectWith(t *testing.T, s *Selector, f models.GameFilters) (*Selection, error) {
	t.Helper()
	ladder := NewQueryBuilder(4, 2015).Build(&f)
	return s.Select(context.Background(), &f, ladder)
}

// Primary empty; the indie-tag stage returns 8 games and only 3 match
// year 2015 with rating >= 60. Every draw must come from those 3.
func TestSelect_DrawsOnlyFromMatchingIndieGames(t *testing.T) {
	t.Parallel()

	matching := []models.GameSummary{
		game(1, 2015, 4.5, 900, "indie"),
		game(2, 2015, 3.0, 150, "indie"),
		game(3, 2015, 4.1, 300, "indie"),
	}
	tagged := append([]models.GameSummary{
		game(4, 2014, 4.8, 900, "indie"),
		game(5, 2015, 2.9, 900, "indie"),
		game(6, 2016, 4.0, 900, "indie"),
		game(7, 2015, 1.0, 900, "indie"),
		game(8, 2013, 4.9, 900, "indie"),
	}, matching...)

	cat := newFakeCatalog()
	cat.stageResults[StageIndieTag] = tagged
	s := newTestSelector(cat)

	want := ids(matching)
	for i := 0; i < 50; i++ {
		sel, err := selectWith(t, s, models.GameFilters{MinRating: intPtr(60), MinReleaseYear: intPtr(2015), IndependentOnly: true})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if !want[sel.Game.ID] {
			t.Fatalf("drew game %d outside the matching subset", sel.Game.ID)
		}
		if sel.Stage != StageIndieTag || sel.Candidates != 3 || sel.Outcome != OutcomeVerified {
			t.Fatalf("unexpected selection: stage=%s candidates=%d outcome=%s", sel.Stage, sel.Candidates, sel.Outcome)
		}
	}
}

// Every stage empty: NotFound, four list calls and no detail lookups.
func TestSelect_AllStagesEmpty(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	s := newTestSelector(cat)

	sel, err := selectWith(t, s, models.GameFilters{Genres: []string{"indie"}, MinReviews: intPtr(100), IndependentOnly: true})
	if !errors.Is(err, ErrNoGamesFound) {
		t.Fatalf("expected ErrNoGamesFound, got sel=%v err=%v", sel, err)
	}

	wantStages := []Stage{StagePrimary, StageFallbackGeneral, StageIndieTag, StageIndieRelaxed}
	if got := cat.listStages(); !reflect.DeepEqual(got, wantStages) {
		t.Errorf("stages queried = %v, want %v", got, wantStages)
	}
	if cat.detailCallCount() != 0 {
		t.Errorf("expected no detail lookups, got %d", cat.detailCallCount())
	}
}

// empty, empty, non-empty but mismatched, matching: the walk ends in the
// matching relaxed results.
func TestSelect_ReachesMatchingRelaxedStage(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	cat.stageResults[StageIndieTag] = []models.GameSummary{game(10, 2014, 4.0, 500, "indie")}
	cat.stageResults[StageIndieRelaxed] = []models.GameSummary{
		game(11, 2015, 4.0, 500, "indie"),
		game(12, 2015, 3.5, 200, "indie"),
	}
	s := newTestSelector(cat)

	sel, err := selectWith(t, s, models.GameFilters{MinReleaseYear: intPtr(2015), IndependentOnly: true})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if sel.Stage != StageIndieRelaxed {
		t.Errorf("Stage = %s, want indie_relaxed", sel.Stage)
	}
	if sel.Game.ID != 11 && sel.Game.ID != 12 {
		t.Errorf("unexpected game %d", sel.Game.ID)
	}
}

func TestSelect_FallbackRunsOnlyWhenPrimaryEmpty(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	cat.stageResults[StagePrimary] = []models.GameSummary{game(1, 2015, 4.0, 500)}
	cat.stageResults[StageIndieTag] = []models.GameSummary{game(2, 2015, 4.0, 500, "indie")}
	s := newTestSelector(cat)

	sel, err := selectWith(t, s, models.GameFilters{IndependentOnly: true})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if sel.Game.ID != 2 {
		t.Errorf("expected indie-tag pick, got %d", sel.Game.ID)
	}
	want := []Stage{StagePrimary, StageIndieTag}
	if got := cat.listStages(); !reflect.DeepEqual(got, want) {
		t.Errorf("stages queried = %v, want %v", got, want)
	}
}

func TestSelect_WithoutIndependence(t *testing.T) {
	t.Parallel()

	t.Run("primary results", func(t *testing.T) {
		t.Parallel()
		cat := newFakeCatalog()
		cat.stageResults[StagePrimary] = []models.GameSummary{game(1, 2015, 4.0, 500)}
		sel, err := selectWith(t, newTestSelector(cat), models.GameFilters{})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if sel.Stage != StagePrimary || len(cat.listStages()) != 1 {
			t.Errorf("expected a single primary query, got %v", cat.listStages())
		}
	})

	t.Run("fallback results", func(t *testing.T) {
		t.Parallel()
		cat := newFakeCatalog()
		cat.stageResults[StageFallbackGeneral] = []models.GameSummary{game(3, 2015, 3.2, 60)}
		sel, err := selectWith(t, newTestSelector(cat), models.GameFilters{})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if sel.Stage != StageFallbackGeneral || sel.Game.ID != 3 {
			t.Errorf("unexpected selection %+v", sel)
		}
	})

	t.Run("nothing", func(t *testing.T) {
		t.Parallel()
		_, err := selectWith(t, newTestSelector(newFakeCatalog()), models.GameFilters{})
		if !errors.Is(err, ErrNoGamesFound) {
			t.Errorf("expected ErrNoGamesFound, got %v", err)
		}
	})
}

func TestSelect_MinIndieMatchesEscalates(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	tagged := []models.GameSummary{
		game(1, 2015, 4.0, 500, "indie"),
		game(2, 2015, 4.0, 500, "indie"),
	}
	cat.stageResults[StageIndieTag] = tagged
	s := NewSelector(cat, NewClassifier(NewDenylist(nil)), SelectorOptions{MinIndieMatches: 3})

	sel, err := selectWith(t, s, models.GameFilters{IndependentOnly: true})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got := cat.listStages(); len(got) != 4 || got[3] != StageIndieRelaxed {
		t.Errorf("expected escalation to the relaxed stage, got %v", got)
	}
	if sel.Stage != StageIndieTag || !ids(tagged)[sel.Game.ID] {
		t.Errorf("expected best-effort pick from tagged results, got %+v", sel)
	}
}

// Below the match threshold, a matching game from either indie stage
// still beats a non-matching tagged game.
func TestSelect_BelowThresholdKeepsMatchingGames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		tagged     []models.GameSummary
		relaxed    []models.GameSummary
		wantIDs    []int
		wantStage  Stage
		candidates int
	}{
		{
			name:       "match only in relaxed",
			tagged:     []models.GameSummary{game(1, 2014, 2.0, 500, "indie")},
			relaxed:    []models.GameSummary{game(2, 2015, 4.5, 500, "indie"), game(3, 2013, 1.0, 500, "indie")},
			wantIDs:    []int{2},
			wantStage:  StageIndieRelaxed,
			candidates: 1,
		},
		{
			name:       "match only in tagged",
			tagged:     []models.GameSummary{game(1, 2015, 4.5, 500, "indie"), game(4, 2012, 3.0, 500, "indie")},
			relaxed:    []models.GameSummary{game(3, 2013, 1.0, 500, "indie")},
			wantIDs:    []int{1},
			wantStage:  StageIndieTag,
			candidates: 1,
		},
		{
			name:       "shared game counted once",
			tagged:     []models.GameSummary{game(1, 2015, 4.5, 500, "indie")},
			relaxed:    []models.GameSummary{game(1, 2015, 4.5, 500, "indie"), game(2, 2015, 4.2, 500, "indie")},
			wantIDs:    []int{1, 2},
			wantStage:  StageIndieRelaxed,
			candidates: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat := newFakeCatalog()
			cat.stageResults[StageIndieTag] = tt.tagged
			cat.stageResults[StageIndieRelaxed] = tt.relaxed
			s := NewSelector(cat, NewClassifier(NewDenylist(nil)), SelectorOptions{MinIndieMatches: 3})

			sel, err := selectWith(t, s, models.GameFilters{MinRating: intPtr(80), MinReleaseYear: intPtr(2015), IndependentOnly: true})
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			want := make(map[int]bool, len(tt.wantIDs))
			for _, id := range tt.wantIDs {
				want[id] = true
			}
			if !want[sel.Game.ID] {
				t.Errorf("picked game %d, want one of %v", sel.Game.ID, tt.wantIDs)
			}
			if sel.Outcome != OutcomeVerified {
				t.Errorf("Outcome = %s, want verified", sel.Outcome)
			}
			if sel.Stage != tt.wantStage {
				t.Errorf("Stage = %s, want %s", sel.Stage, tt.wantStage)
			}
			if sel.Candidates != tt.candidates {
				t.Errorf("Candidates = %d, want %d", sel.Candidates, tt.candidates)
			}
		})
	}
}

func TestSelect_BestEffortPrefersRequestedYear(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	cat.stageResults[StageIndieRelaxed] = []models.GameSummary{
		game(1, 2016, 4.0, 500, "indie"),
		game(2, 2015, 1.0, 5, "indie"),
		game(3, 2017, 4.0, 500, "indie"),
	}
	s := newTestSelector(cat)
	s.intn = sequence(0)

	sel, err := selectWith(t, s, models.GameFilters{MinRating: intPtr(80), MinReleaseYear: intPtr(2015), IndependentOnly: true})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if sel.Game.ID != 2 || sel.Candidates != 1 {
		t.Errorf("expected the 2015 game, got %d from %d candidates", sel.Game.ID, sel.Candidates)
	}
	if sel.Outcome != OutcomeBestEffort {
		t.Errorf("Outcome = %s, want best_effort", sel.Outcome)
	}
}

// With both indie stages empty, the general pool is narrowed by the
// developer check. A failed lookup only drops that candidate.
func TestSelect_GeneralPoolDeveloperCheck(t *testing.T) {
	t.Parallel()

	pool := []models.GameSummary{
		game(1, 2015, 4.0, 500, "indie"), // qualifies from its summary
		game(2, 2015, 4.0, 500),          // Ubisoft
		game(3, 2015, 4.0, 500),          // small studio
		game(4, 2015, 4.0, 500),          // lookup fails
		game(5, 2015, 4.0, 500),          // no developer data
	}
	cat := newFakeCatalog()
	cat.stageResults[StagePrimary] = pool
	cat.details["2"] = detail(2, "Ubisoft")
	cat.details["3"] = detail(3, "Team Cherry")
	cat.detailErrs["4"] = &rawg.TransportError{Op: "get_game", Err: context.DeadlineExceeded}
	cat.details["5"] = detail(5)

	s := newTestSelector(cat, "Ubisoft")
	seen := map[int]bool{}
	for i := 0; i < 40; i++ {
		sel, err := selectWith(t, s, models.GameFilters{IndependentOnly: true})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if sel.Stage != StagePrimary || sel.Candidates != 2 {
			t.Fatalf("unexpected selection stage=%s candidates=%d", sel.Stage, sel.Candidates)
		}
		seen[sel.Game.ID] = true
	}
	for id := range seen {
		if id != 1 && id != 3 {
			t.Errorf("game %d should have been excluded", id)
		}
	}
}

func TestSelector_IndependentSubsetFanout(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	var pool []models.GameSummary
	for i := 1; i <= 20; i++ {
		pool = append(pool, game(i, 2015, 4.0, 500))
		cat.details[strconv.Itoa(i)] = detail(i, "Studio "+strconv.Itoa(i))
	}
	pool[18].Tags = []models.Tag{{ID: 31, Name: "Indie", Slug: "indie"}}

	s := NewSelector(cat, NewClassifier(NewDenylist(nil)), SelectorOptions{DetailFanout: 5, DetailConcurrency: 2})
	got, err := s.independentSubset(context.Background(), pool)
	if err != nil {
		t.Fatalf("independentSubset() error = %v", err)
	}
	if cat.detailCallCount() != 5 {
		t.Errorf("expected 5 detail lookups, got %d", cat.detailCallCount())
	}
	wantIDs := []int{1, 2, 3, 4, 5, 19}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d games, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d = %d, want %d (order must be preserved)", i, got[i].ID, id)
		}
	}
}

func TestSelect_UnfilteredGeneralPoolAsLastResort(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	cat.stageResults[StageFallbackGeneral] = []models.GameSummary{game(1, 2015, 4.0, 500), game(2, 2015, 4.0, 500)}
	cat.details["1"] = detail(1, "Capcom")
	cat.details["2"] = detail(2, "Capcom")
	s := newTestSelector(cat, "Capcom")

	sel, err := selectWith(t, s, models.GameFilters{IndependentOnly: true})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if sel.Stage != StageFallbackGeneral || sel.Candidates != 2 {
		t.Errorf("expected unfiltered fallback pool, got stage=%s candidates=%d", sel.Stage, sel.Candidates)
	}
}

func TestSelect_UpstreamErrorAborts(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	cat.stageErrors[StageIndieTag] = &rawg.UpstreamError{Op: "list_games", StatusCode: 502, Body: "bad gateway"}
	cat.stageResults[StagePrimary] = []models.GameSummary{game(1, 2015, 4.0, 500)}

	_, err := selectWith(t, newTestSelector(cat), models.GameFilters{IndependentOnly: true})
	var upErr *rawg.UpstreamError
	if !errors.As(err, &upErr) || upErr.StatusCode != 502 {
		t.Fatalf("expected upstream 502, got %v", err)
	}
	if errors.Is(err, ErrNoGamesFound) {
		t.Error("an upstream failure is not a not-found")
	}
}

// A failed first draw is replaced by a draw from the matching subset.
func TestPick_RepairsFailedDraw(t *testing.T) {
	t.Parallel()

	games := []models.GameSummary{
		game(1, 2014, 4.0, 500),
		game(2, 2015, 4.0, 500),
		game(3, 2015, 2.0, 500),
		game(4, 2015, 3.5, 500),
	}
	f := models.GameFilters{MinRating: intPtr(70), MinReleaseYear: intPtr(2015)}

	for first := range games {
		for second := 0; second < 2; second++ {
			s := newTestSelector(newFakeCatalog())
			s.intn = sequence(first, second)
			r := &selectionRun{s: s, filters: &f, ladder: NewQueryBuilder(4, 2015).Build(&f)}

			sel := r.pick(context.Background(), StagePrimary, games)
			if sel.Game.ID != 2 && sel.Game.ID != 4 {
				t.Errorf("draw (%d,%d): returned non-matching game %d", first, second, sel.Game.ID)
			}
			wantOutcome := OutcomeRepaired
			if first == 1 || first == 3 {
				wantOutcome = OutcomeVerified
			}
			if sel.Outcome != wantOutcome {
				t.Errorf("draw (%d,%d): outcome = %s, want %s", first, second, sel.Outcome, wantOutcome)
			}
		}
	}
}

func TestPick_BestEffortKeepsOriginalDraw(t *testing.T) {
	t.Parallel()

	games := []models.GameSummary{game(1, 2014, 4.0, 500), game(2, 2016, 4.0, 500)}
	f := models.GameFilters{MinReleaseYear: intPtr(2015)}
	s := newTestSelector(newFakeCatalog())
	s.intn = sequence(1)
	r := &selectionRun{s: s, filters: &f, ladder: NewQueryBuilder(4, 2015).Build(&f)}

	sel := r.pick(context.Background(), StageIndieRelaxed, games)
	if sel.Game.ID != 2 || sel.Outcome != OutcomeBestEffort {
		t.Errorf("expected best-effort original draw, got id=%d outcome=%s", sel.Game.ID, sel.Outcome)
	}
}

func TestSatisfies_NilBoundsAreUnbounded(t *testing.T) {
	t.Parallel()

	f := models.GameFilters{}
	r := &selectionRun{filters: &f, ladder: NewQueryBuilder(4, 2015).Build(&f)}

	g := game(1, 2015, 0, 0)
	if !r.satisfies(&g) {
		t.Error("nil rating/review bounds must not reject a zero-rated game")
	}
	zero := models.GameFilters{MinRating: intPtr(1)}
	r.filters = &zero
	if r.satisfies(&g) {
		t.Error("minRating=1 should reject a zero-rated game")
	}
}

func TestSelect_ContextCanceledDuringDeveloperCheck(t *testing.T) {
	t.Parallel()

	cat := newFakeCatalog()
	cat.stageResults[StagePrimary] = []models.GameSummary{game(1, 2015, 4.0, 500)}
	s := newTestSelector(cat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := models.GameFilters{IndependentOnly: true}
	_, err := s.Select(ctx, &f, NewQueryBuilder(4, 2015).Build(&f))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
