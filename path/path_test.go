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

package path_test

import (
	"testing"

	"github.com/coreshell/coreshell/path"
)

func mustPosix(t *testing.T, s string) path.Any {
	t.Helper()

	p, err := path.NewOS(path.OSPosix, s)
	if err != nil {
		t.Fatalf("NewOS(%q) = %v", s, err)
	}

	return p
}

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "a", "a/b", "a/b/", "/", "/a/b"}

	for _, s := range cases {
		p := mustPosix(t, s)

		p2 := mustPosix(t, p.String())
		if p2.String() != p.String() {
			t.Errorf("round trip of %q via String failed: got %q", s, p2.String())
		}

		p3 := mustPosix(t, p.Repr())
		if p3.Repr() != p.Repr() {
			t.Errorf("round trip of %q via Repr failed: got %q", s, p3.Repr())
		}
	}
}

func TestStringNeverEndsInSeparatorExceptRoot(t *testing.T) {
	cases := []string{"a/b/", "/a/b/", "/", "a/"}

	for _, s := range cases {
		p := mustPosix(t, s)
		got := p.String()

		if got != "/" && len(got) > 0 && got[len(got)-1] == '/' {
			t.Errorf("String() of %q = %q ends with separator", s, got)
		}
	}
}

func TestJoinSingleSeparator(t *testing.T) {
	d := mustPosix(t, "a/b").ToDir()
	q := mustPosix(t, "c")

	got := d.Join(q).String()
	if got != "a/b/c" {
		t.Errorf("Join = %q, want a/b/c", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	p := mustPosix(t, "a/b/../c/./d")

	if err := p.Normalize(false, true); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	once := p.String()

	if err := p.Normalize(false, true); err != nil {
		t.Fatalf("Normalize (2nd): %v", err)
	}

	if p.String() != once {
		t.Errorf("Normalize not idempotent: %q then %q", once, p.String())
	}
}

func TestNormalizeDotDot(t *testing.T) {
	p := mustPosix(t, "a/b/../c")

	if err := p.Normalize(false, true); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if want := "a/c"; p.String() != want {
		t.Errorf("Normalize(a/b/../c) = %q, want %q", p.String(), want)
	}
}

func TestNormalizePastRootFails(t *testing.T) {
	p := mustPosix(t, "/..")

	if err := p.Normalize(false, true); err == nil {
		t.Errorf("Normalize(/..) succeeded, want ErrInvalid")
	}
}

func TestNormalizeCurEmpty(t *testing.T) {
	p := mustPosix(t, "./.")

	if err := p.Normalize(false, true); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if p.String() != "" {
		t.Errorf("Normalize(./., curEmpty=true).String() = %q, want empty", p.String())
	}
}

func TestSubAntisymmetric(t *testing.T) {
	a := mustPosix(t, "/a/b/c")
	b := mustPosix(t, "/a/b")

	if !a.Sub(b) {
		t.Fatalf("expected a.Sub(b)")
	}

	if a.Equal(b) {
		t.Fatalf("a and b should differ")
	}

	if b.Sub(a) {
		t.Errorf("b.Sub(a) should be false when a.Sub(b) && a != b")
	}
}

func TestEmptyPathBoundary(t *testing.T) {
	p := mustPosix(t, "")

	if p.String() != "" {
		t.Errorf("String() = %q, want empty", p.String())
	}

	if !p.Simple() {
		t.Errorf("Simple() = false, want true")
	}

	if p.Absolute() {
		t.Errorf("Absolute() = true, want false")
	}

	it := path.NewIterator(p)
	if it.Next() {
		t.Errorf("expected no components for empty path")
	}
}

func TestRootPathBoundary(t *testing.T) {
	p := mustPosix(t, "/")

	if p.String() != "/" {
		t.Errorf("String() = %q, want /", p.String())
	}

	if p.Directory().Any().String() != "" {
		t.Errorf("Directory() of root should be empty")
	}

	if p.Leaf() != "" {
		t.Errorf("Leaf() of root = %q, want empty", p.Leaf())
	}
}

func TestCaseSensitivity(t *testing.T) {
	a, _ := path.NewOS(path.OSWindows, `C:\Foo\Bar`)
	b, _ := path.NewOS(path.OSWindows, `c:\foo\bar`)

	if !a.Equal(b) {
		t.Errorf("Windows paths should compare case-insensitively")
	}

	pa, _ := path.NewOS(path.OSPosix, "/Foo/Bar")
	pb, _ := path.NewOS(path.OSPosix, "/foo/bar")

	if pa.Equal(pb) {
		t.Errorf("POSIX paths should compare case-sensitively")
	}
}
