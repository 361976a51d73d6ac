// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

// Package models defines the data types shared by the RAWG client, the
// discovery pipeline and the HTTP API.
//
// Game records keep RAWG's snake_case JSON shape. Ratings arrive on RAWG's
// 0-5 scale and are compared against filters on a 0-100 percent scale via
// RatingPercent.
package models
