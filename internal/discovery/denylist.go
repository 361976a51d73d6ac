// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"sync/atomic"
)

// Denylist is the set of major publisher and studio names. Lookups are
// exact and case-sensitive. Replace swaps the whole set atomically so
// in-flight classifications see either the old or the new list.
type Denylist struct {
	names atomic.Pointer[map[string]struct{}]
}

// NewDenylist returns a denylist holding names.
func NewDenylist(names []string) *Denylist {
	d := &Denylist{}
	d.Replace(names)
	return d
}

// Replace installs a new set of names.
func (d *Denylist) Replace(names []string) {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	d.names.Store(&set)
}

// Contains reports whether name is on the list.
func (d *Denylist) Contains(name string) bool {
	set := d.names.Load()
	if set == nil {
		return false
	}
	_, ok := (*set)[name]
	return ok
}

// Len returns the number of names.
func (d *Denylist) Len() int {
	set := d.names.Load()
	if set == nil {
		return 0
	}
	return len(*set)
}
