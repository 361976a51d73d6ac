// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

// Package services adapts Indiescout components to suture.Service:
// HTTPServerService for the API server and PublishersWatchService for the
// hot-reloaded publisher denylist.
package services
