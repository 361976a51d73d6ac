// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"strings"

	"github.com/tomtom215/indiescout/internal/models"
)

// Verdict is the outcome of an independence check.
type Verdict int

const (
	// VerdictUnknown means no indie tag and no developer data.
	VerdictUnknown Verdict = iota
	VerdictIndependent
	VerdictMajor
)

func (v Verdict) String() string {
	switch v {
	case VerdictIndependent:
		return "independent"
	case VerdictMajor:
		return "major"
	default:
		return "unknown"
	}
}

// Qualifies reports whether the verdict admits a game to an
// independent-only candidate set. Unknown does not qualify.
func (v Verdict) Qualifies() bool {
	return v == VerdictIndependent
}

// Classifier decides whether a game is independent from its tags and
// developers.
type Classifier struct {
	denylist *Denylist
}

// NewClassifier returns a classifier reading from denylist.
func NewClassifier(denylist *Denylist) *Classifier {
	return &Classifier{denylist: denylist}
}

// Classify returns Independent when tags carry "indie", or when there is
// at least one developer and none is on the denylist.
func (c *Classifier) Classify(tags []models.Tag, developers []models.Developer) Verdict {
	if HasIndieTag(tags) {
		return VerdictIndependent
	}
	if len(developers) == 0 {
		return VerdictUnknown
	}
	for _, d := range developers {
		if c.denylist.Contains(d.Name) {
			return VerdictMajor
		}
	}
	return VerdictIndependent
}

// HasIndieTag reports whether tags include the "indie" tag.
func HasIndieTag(tags []models.Tag) bool {
	for _, t := range tags {
		if t.Slug == indieTagSlug || strings.EqualFold(t.Name, indieTagSlug) {
			return true
		}
	}
	return false
}
