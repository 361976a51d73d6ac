// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

// Package logging provides the process-wide zerolog logger for Indiescout.
//
// JSON output is the default; console output is meant for local
// development. Request handlers log through Ctx so every line carries the
// request ID assigned by the API middleware:
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Ctx(ctx).Warn().Err(err).Msg("Upstream call failed")
//
// Environment variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
