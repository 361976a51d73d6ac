// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

// Package validation wraps go-playground/validator v10 with a shared
// instance, custom rules for RAWG identifiers and readable messages.
//
// Custom tags:
//   - gameid: numeric RAWG id or lowercase slug (e.g. "3498", "hollow-knight")
//   - slug: lowercase slug or numeric id, used for genre filters
//
// Field names in messages come from the json tag, so a failure on
//
//	MinRating *int `json:"minRating" validate:"omitnil,min=0,max=100"`
//
// reads "minRating must be at most 100".
package validation
