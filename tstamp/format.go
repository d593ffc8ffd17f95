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

package tstamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrFormat is returned on a malformed format directive or an input that
// does not match the format.
var ErrFormat = errors.New("tstamp: invalid format or unmatched input")

// fracToken is a parsed "%[<delim><unit>]" extension directive: an optional
// literal delimiter to emit/expect before the fractional part, and a unit
// of nanoseconds (N, 9 digits), microseconds (U, 6 digits) or milliseconds
// (M, 3 digits).
type fracToken struct {
	delim byte // 0 if none
	unit  byte // 'N', 'U' or 'M'
	pos   int  // byte offset in the original format string
	raw   string
}

// extractFracToken finds the first "%[...]" token in format, if any, and
// returns the format with the token removed plus the token's description.
func extractFracToken(format string) (string, *fracToken, error) {
	i := strings.Index(format, "%[")
	if i == -1 {
		return format, nil, nil
	}

	end := strings.IndexByte(format[i:], ']')
	if end == -1 {
		return "", nil, ErrFormat
	}

	end += i
	body := format[i+2 : end]

	var tok fracToken

	switch len(body) {
	case 1:
		tok.unit = body[0]
	case 2:
		tok.delim = body[0]
		tok.unit = body[1]
	default:
		return "", nil, ErrFormat
	}

	if tok.unit != 'N' && tok.unit != 'U' && tok.unit != 'M' {
		return "", nil, ErrFormat
	}

	tok.pos = i
	tok.raw = format[i : end+1]

	return format[:i] + format[end+1:], &tok, nil
}

func fracDigits(unit byte) int {
	switch unit {
	case 'N':
		return 9
	case 'U':
		return 6
	case 'M':
		return 3
	}

	return 0
}

// ToString formats ts per the distilled spec's extended directive grammar:
// standard strftime-style conversion specifications plus %[<delim><unit>].
// If special is true and ts is a sentinel, ToString prints "<unknown>" or
// "<nonexistent>" instead of failing.
func ToString(ts Instant, format string, special bool, local bool) (string, error) {
	if !ts.IsNormal() {
		if !special {
			return "", errors.New("tstamp: ToString of a sentinel instant")
		}

		if ts.IsUnknown() {
			return "<unknown>", nil
		}

		return "<nonexistent>", nil
	}

	base, tok, err := extractFracToken(format)
	if err != nil {
		return "", err
	}

	t := ts.t
	if local {
		t = t.Local()
	} else {
		t = t.UTC()
	}

	out, err := strftime(t, base)
	if err != nil {
		return "", err
	}

	if tok == nil {
		return out, nil
	}

	ns := t.Nanosecond()
	if ns == 0 {
		return insertAt(out, tok.pos, ""), nil
	}

	digits := fracDigits(tok.unit)
	val := ns

	switch tok.unit {
	case 'U':
		val = ns / 1000
	case 'M':
		val = ns / 1000000
	}

	frac := fmt.Sprintf("%0*d", digits, val)
	if tok.delim != 0 {
		frac = string(tok.delim) + frac
	}

	return insertAt(out, tok.pos, frac), nil
}

// insertAt returns out with ins appended. pos (the token's offset in the
// format string) is not used, so the fractional part always follows the
// whole strftime output, wherever the token sits in the format; the token
// is conventionally placed at the end of a format string (after seconds).
func insertAt(out string, pos int, ins string) string {
	_ = pos

	return out + ins
}

// FromString parses s per format (same extension grammar as ToString) and
// returns the resulting Instant. If end is non-nil, *end receives the
// number of bytes of s consumed; otherwise the whole of s must match.
func FromString(s string, format string, local bool, end *int) (Instant, error) {
	base, tok, err := extractFracToken(format)
	if err != nil {
		return Instant{}, err
	}

	mainInput := s
	var fracNanos int
	fracStart, fracLen := 0, 0

	if tok != nil {
		// The fractional part, if present, is peeled off the tail of the
		// input before delegating the remainder to the base strptime.
		rest := s

		start := len(rest)
		if tok.delim != 0 {
			if idx := strings.LastIndexByte(rest, tok.delim); idx != -1 {
				start = idx
			}
		} else {
			start = firstNonDigitRun(rest)
		}

		if start < len(rest) {
			digitsEnd := start
			if tok.delim != 0 {
				digitsEnd++ // skip delimiter
			}

			digEnd := digitsEnd
			for digEnd < len(rest) && isDigit(rest[digEnd]) {
				digEnd++
			}

			if digEnd > digitsEnd {
				digits := rest[digitsEnd:digEnd]
				n, _ := strconv.Atoi(digits)

				switch tok.unit {
				case 'N':
					fracNanos = scaleFrac(n, len(digits), 9)
				case 'U':
					fracNanos = scaleFrac(n, len(digits), 6)
				case 'M':
					fracNanos = scaleFrac(n, len(digits), 3)
				}

				mainInput = rest[:start] + rest[digEnd:]
				fracStart, fracLen = start, digEnd-start
			}
		}
	}

	loc := time.UTC
	if local {
		loc = time.Local
	}

	t, consumed, err := strptime(mainInput, base, loc)
	if err != nil {
		return Instant{}, err
	}

	if fracNanos != 0 {
		t = t.Add(time.Duration(fracNanos) * time.Nanosecond)
	}

	if end != nil {
		if fracLen > 0 && consumed >= fracStart {
			consumed += fracLen
		}

		*end = consumed
	} else if consumed != len(mainInput) {
		return Instant{}, ErrFormat
	}

	return FromTime(t), nil
}

func scaleFrac(n, digits, want int) int {
	for digits < want {
		n *= 10
		digits++
	}

	for digits > want {
		n /= 10
		digits--
	}

	return n
}

func firstNonDigitRun(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
