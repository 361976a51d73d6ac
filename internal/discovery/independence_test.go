// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"sync"
	"testing"

	"github.com/tomtom215/indiescout/internal/models"
)

func devs(names ...string) []models.Developer {
	out := make([]models.Developer, len(names))
	for i, n := range names {
		out[i] = models.Developer{ID: i + 1, Name: n}
	}
	return out
}

var (
	indieTag  = models.Tag{ID: 31, Name: "Indie", Slug: "indie"}
	pixelTag  = models.Tag{ID: 122, Name: "Pixel Graphics", Slug: "pixel-graphics"}
	singleTag = models.Tag{ID: 31, Name: "Singleplayer", Slug: "singleplayer"}
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := NewClassifier(NewDenylist([]string{"Ubisoft", "Electronic Arts"}))

	tests := []struct {
		name       string
		tags       []models.Tag
		developers []models.Developer
		want       Verdict
	}{
		{"indie tag only", []models.Tag{pixelTag, indieTag}, nil, VerdictIndependent},
		{"indie tag beats major developer", []models.Tag{indieTag}, devs("Ubisoft"), VerdictIndependent},
		{"small studio", nil, devs("Team Cherry"), VerdictIndependent},
		{"major developer", []models.Tag{singleTag}, devs("Ubisoft"), VerdictMajor},
		{"one major among several", nil, devs("Team Cherry", "Electronic Arts"), VerdictMajor},
		{"no data", nil, nil, VerdictUnknown},
		{"tags without indie, no developers", []models.Tag{pixelTag}, nil, VerdictUnknown},
		{"denylist is case sensitive", nil, devs("ubisoft"), VerdictIndependent},
		{"indie tag matched by name", []models.Tag{{ID: 9, Name: "indie", Slug: "indie-games"}}, nil, VerdictIndependent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tt.tags, tt.developers); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Adding the indie tag never turns a qualifying game into a non-qualifying one.
func TestClassifier_IndieTagIsMonotonic(t *testing.T) {
	t.Parallel()

	c := NewClassifier(NewDenylist([]string{"Capcom"}))
	tagSets := [][]models.Tag{nil, {pixelTag}, {singleTag, pixelTag}, {indieTag}}
	devSets := [][]models.Developer{nil, devs("Capcom"), devs("Supergiant Games"), devs("Capcom", "Supergiant Games")}

	for _, tags := range tagSets {
		for _, d := range devSets {
			before := c.Classify(tags, d)
			after := c.Classify(append(append([]models.Tag(nil), tags...), indieTag), d)
			if !after.Qualifies() {
				t.Errorf("tags %v devs %v: adding indie tag gave %s", tags, d, after)
			}
			if before.Qualifies() && !after.Qualifies() {
				t.Errorf("tags %v devs %v: indie tag flipped positive to negative", tags, d)
			}
		}
	}
}

func TestVerdict_Qualifies(t *testing.T) {
	t.Parallel()

	if !VerdictIndependent.Qualifies() || VerdictMajor.Qualifies() || VerdictUnknown.Qualifies() {
		t.Error("only independent verdicts qualify")
	}
}

func TestDenylist_Replace(t *testing.T) {
	t.Parallel()

	d := NewDenylist([]string{"Ubisoft"})
	c := NewClassifier(d)

	if c.Classify(nil, devs("Capcom")) != VerdictIndependent {
		t.Fatal("Capcom should not be denied before reload")
	}
	d.Replace([]string{"Capcom", "SEGA"})
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	if c.Classify(nil, devs("Capcom")) != VerdictMajor {
		t.Error("classifier should see the replaced list")
	}
	if d.Contains("Ubisoft") {
		t.Error("old entries should be gone after Replace")
	}
}

func TestDenylist_ConcurrentReplace(t *testing.T) {
	t.Parallel()

	d := NewDenylist([]string{"A"})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Replace([]string{"A", "B"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !d.Contains("A") {
					t.Error("A must always be present")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDenylist_ZeroValue(t *testing.T) {
	t.Parallel()

	var d Denylist
	if d.Contains("anything") || d.Len() != 0 {
		t.Error("zero Denylist should be empty")
	}
}
