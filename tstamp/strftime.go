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
	"fmt"
	"strconv"
	"strings"
	"time"
)

// strftime formats t according to a subset of the platform broken-down-time
// formatter's conversion specifications, the portable core that every
// format string in the distilled spec's examples restricts itself to.
func strftime(t time.Time, format string) (string, error) {
	var b strings.Builder

	for i := 0; i < len(format); i++ {
		c := format[i]

		if c != '%' || i == len(format)-1 {
			b.WriteByte(c)
			continue
		}

		i++
		verb := format[i]

		s, err := strftimeVerb(t, verb)
		if err != nil {
			return "", err
		}

		b.WriteString(s)
	}

	return b.String(), nil
}

func strftimeVerb(t time.Time, verb byte) (string, error) {
	switch verb {
	case 'Y':
		return strconv.Itoa(t.Year()), nil
	case 'y':
		return fmt.Sprintf("%02d", t.Year()%100), nil
	case 'm':
		return fmt.Sprintf("%02d", int(t.Month())), nil
	case 'd':
		return fmt.Sprintf("%02d", t.Day()), nil
	case 'e':
		return fmt.Sprintf("%2d", t.Day()), nil
	case 'H':
		return fmt.Sprintf("%02d", t.Hour()), nil
	case 'I':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}

		return fmt.Sprintf("%02d", h), nil
	case 'M':
		return fmt.Sprintf("%02d", t.Minute()), nil
	case 'S':
		return fmt.Sprintf("%02d", t.Second()), nil
	case 'j':
		return fmt.Sprintf("%03d", t.YearDay()), nil
	case 'p':
		if t.Hour() < 12 {
			return "AM", nil
		}

		return "PM", nil
	case 'a':
		return t.Format("Mon"), nil
	case 'A':
		return t.Format("Monday"), nil
	case 'b', 'h':
		return t.Format("Jan"), nil
	case 'B':
		return t.Format("January"), nil
	case 'Z':
		name, _ := t.Zone()

		return name, nil
	case 'z':
		return t.Format("-0700"), nil
	case 'n':
		return "\n", nil
	case 't':
		return "\t", nil
	case '%':
		return "%", nil
	case 'T':
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second()), nil
	case 'F':
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day()), nil
	default:
		return "", fmt.Errorf("%w: unsupported directive %%%c", ErrFormat, verb)
	}
}

// strptime is a portable parser for the same directive subset strftime
// formats, used on platforms (and in this pure-Go implementation,
// universally) lacking a native strptime. It returns the parsed time and
// the number of bytes of s consumed.
func strptime(s, format string, loc *time.Location) (time.Time, int, error) {
	year, month, day := 1970, 1, 1
	hour, minute, second := 0, 0, 0
	pm := false
	havePM := false

	si := 0

	for fi := 0; fi < len(format); fi++ {
		c := format[fi]

		if c != '%' {
			if si >= len(s) || s[si] != c {
				return time.Time{}, si, ErrFormat
			}

			si++

			continue
		}

		fi++
		if fi >= len(format) {
			return time.Time{}, si, ErrFormat
		}

		verb := format[fi]

		switch verb {
		case 'Y':
			n, adv, err := readInt(s[si:], 4)
			if err != nil {
				return time.Time{}, si, err
			}

			year = n
			si += adv
		case 'y':
			n, adv, err := readInt(s[si:], 2)
			if err != nil {
				return time.Time{}, si, err
			}

			if n < 69 {
				year = 2000 + n
			} else {
				year = 1900 + n
			}

			si += adv
		case 'm':
			n, adv, err := readInt(s[si:], 2)
			if err != nil {
				return time.Time{}, si, err
			}

			month = n
			si += adv
		case 'd', 'e':
			n, adv, err := readInt(s[si:], 2)
			if err != nil {
				return time.Time{}, si, err
			}

			day = n
			si += adv
		case 'H':
			n, adv, err := readInt(s[si:], 2)
			if err != nil {
				return time.Time{}, si, err
			}

			hour = n
			si += adv
		case 'I':
			n, adv, err := readInt(s[si:], 2)
			if err != nil {
				return time.Time{}, si, err
			}

			hour = n % 12
			si += adv
		case 'M':
			n, adv, err := readInt(s[si:], 2)
			if err != nil {
				return time.Time{}, si, err
			}

			minute = n
			si += adv
		case 'S':
			n, adv, err := readInt(s[si:], 2)
			if err != nil {
				return time.Time{}, si, err
			}

			second = n
			si += adv
		case 'p':
			if si+2 > len(s) {
				return time.Time{}, si, ErrFormat
			}

			switch strings.ToUpper(s[si : si+2]) {
			case "AM":
				pm, havePM = false, true
			case "PM":
				pm, havePM = true, true
			default:
				return time.Time{}, si, ErrFormat
			}

			si += 2
		case 'T':
			t, adv, err := strptime(s[si:], "%H:%M:%S", loc)
			if err != nil {
				return time.Time{}, si, err
			}

			hour, minute, second = t.Hour(), t.Minute(), t.Second()
			si += adv
		case 'F':
			t, adv, err := strptime(s[si:], "%Y-%m-%d", loc)
			if err != nil {
				return time.Time{}, si, err
			}

			year, month, day = t.Year(), int(t.Month()), t.Day()
			si += adv
		case 'n', 't':
			for si < len(s) && (s[si] == ' ' || s[si] == '\t' || s[si] == '\n') {
				si++
			}
		case '%':
			if si >= len(s) || s[si] != '%' {
				return time.Time{}, si, ErrFormat
			}

			si++
		default:
			return time.Time{}, si, fmt.Errorf("%w: unsupported directive %%%c", ErrFormat, verb)
		}
	}

	if havePM && pm && hour < 12 {
		hour += 12
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), si, nil
}

// readInt reads up to maxDigits decimal digits from s.
func readInt(s string, maxDigits int) (int, int, error) {
	i := 0
	for i < len(s) && i < maxDigits && isDigit(s[i]) {
		i++
	}

	if i == 0 {
		return 0, 0, ErrFormat
	}

	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, ErrFormat
	}

	return n, i, nil
}
