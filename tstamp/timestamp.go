//
//  Copyright 2021 The AVFS authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Package tstamp implements wall-clock instants and durations with
// nanosecond resolution, plus strftime/strptime-style formatting with a
// fractional-second extension, as specified for component B.
package tstamp

import (
	"errors"
	"time"
)

// Kind distinguishes a normal Instant from the two sentinel values.
type Kind uint8

const (
	Normal Kind = iota
	KindUnknown
	KindNonexistent
)

// Instant is a system-clock instant with nanosecond resolution, or one of
// the two sentinels: Unknown (information not yet/not obtainable) and
// Nonexistent (the entry is known to be absent).
type Instant struct {
	t    time.Time
	kind Kind
}

// Unknown is the sentinel Instant meaning "not yet or not obtainable".
var Unknown = Instant{kind: KindUnknown}

// Nonexistent is the sentinel Instant meaning "known to be absent".
var Nonexistent = Instant{kind: KindNonexistent}

// Duration is a signed, nanosecond-precision duration.
type Duration = time.Duration

// Now returns the current Instant.
func Now() Instant {
	return Instant{t: time.Now()}
}

// FromTime wraps a time.Time as a normal Instant.
func FromTime(t time.Time) Instant {
	return Instant{t: t}
}

// IsNormal reports whether ts is neither Unknown nor Nonexistent.
func (ts Instant) IsNormal() bool { return ts.kind == Normal }

// IsUnknown reports whether ts is the Unknown sentinel.
func (ts Instant) IsUnknown() bool { return ts.kind == KindUnknown }

// IsNonexistent reports whether ts is the Nonexistent sentinel.
func (ts Instant) IsNonexistent() bool { return ts.kind == KindNonexistent }

// Time returns the underlying time.Time. Only meaningful if IsNormal.
func (ts Instant) Time() time.Time { return ts.t }

// Sub returns the signed Duration ts-u, for two normal instants.
func (ts Instant) Sub(u Instant) (Duration, error) {
	if !ts.IsNormal() || !u.IsNormal() {
		return 0, errors.New("tstamp: Sub on a sentinel instant")
	}

	return ts.t.Sub(u.t), nil
}

// Add returns ts shifted by d.
func (ts Instant) Add(d Duration) Instant {
	if !ts.IsNormal() {
		return ts
	}

	return Instant{t: ts.t.Add(d)}
}

// Before reports whether ts is strictly before u. Sentinels are never
// Before/After one another or a normal instant; only two normal instants
// are comparable.
func (ts Instant) Before(u Instant) bool {
	return ts.IsNormal() && u.IsNormal() && ts.t.Before(u.t)
}

// After reports whether ts is strictly after u.
func (ts Instant) After(u Instant) bool {
	return ts.IsNormal() && u.IsNormal() && ts.t.After(u.t)
}

// Equal reports whether ts and u denote the same point in time, or the same
// sentinel.
func (ts Instant) Equal(u Instant) bool {
	if ts.kind != u.kind {
		return false
	}

	if ts.kind != Normal {
		return true
	}

	return ts.t.Equal(u.t)
}

// Daytime returns ts minus the most recent local midnight.
func Daytime(ts Instant) (Duration, error) {
	if !ts.IsNormal() {
		return 0, errors.New("tstamp: Daytime on a sentinel instant")
	}

	local := ts.t.Local()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())

	return local.Sub(midnight), nil
}
