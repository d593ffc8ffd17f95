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

package tstamp_test

import (
	"testing"
	"time"

	"github.com/coreshell/coreshell/tstamp"
)

func TestToStringFromStringRoundTrip(t *testing.T) {
	ts := tstamp.FromTime(time.Date(2024, 3, 5, 13, 4, 5, 0, time.UTC))

	const format = "%Y-%m-%d %H:%M:%S"

	s, err := tstamp.ToString(ts, format, false, false)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}

	if s != "2024-03-05 13:04:05" {
		t.Fatalf("ToString = %q", s)
	}

	back, err := tstamp.FromString(s, format, false, nil)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}

	s2, err := tstamp.ToString(back, format, false, false)
	if err != nil {
		t.Fatalf("ToString (2nd): %v", err)
	}

	if s2 != s {
		t.Errorf("round trip mismatch: %q != %q", s2, s)
	}
}

func TestFractionalExtension(t *testing.T) {
	ts := tstamp.FromTime(time.Date(2024, 3, 5, 13, 4, 5, 123000000, time.UTC))

	const format = "%Y-%m-%d %H:%M:%S%[.N]"

	s, err := tstamp.ToString(ts, format, false, false)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}

	if want := "2024-03-05 13:04:05.123000000"; s != want {
		t.Fatalf("ToString = %q, want %q", s, want)
	}
}

func TestFractionalZeroOmitted(t *testing.T) {
	ts := tstamp.FromTime(time.Date(2024, 3, 5, 13, 4, 5, 0, time.UTC))

	const format = "%H:%M:%S%[.N]"

	s, err := tstamp.ToString(ts, format, false, false)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}

	if want := "13:04:05"; s != want {
		t.Fatalf("ToString = %q, want %q (zero fraction omitted)", s, want)
	}
}

func TestSentinelRendering(t *testing.T) {
	s, err := tstamp.ToString(tstamp.Unknown, "%Y", true, false)
	if err != nil {
		t.Fatalf("ToString(Unknown): %v", err)
	}

	if s != "<unknown>" {
		t.Errorf("ToString(Unknown) = %q", s)
	}

	if _, err := tstamp.ToString(tstamp.Nonexistent, "%Y", false, false); err == nil {
		t.Errorf("expected error formatting a sentinel without special=true")
	}
}

func TestDaytime(t *testing.T) {
	ts := tstamp.FromTime(time.Date(2024, 3, 5, 1, 2, 3, 0, time.UTC))

	d, err := tstamp.Daytime(ts)
	if err != nil {
		t.Fatalf("Daytime: %v", err)
	}

	if d < 0 || d >= 24*time.Hour {
		t.Errorf("Daytime out of range: %v", d)
	}
}
