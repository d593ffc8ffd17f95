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

package path

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when Normalize would have to pop past an absolute
// root (e.g. "/..").
var ErrInvalid = errors.New("path: invalid path")

// ErrCrossRoot is returned by RelativeTo when the two paths have no common root.
var ErrCrossRoot = errors.New("path: no common root")

// Abnormality flags reported by Abnormalities.
type Abnormality uint8

const (
	AbnormalSeparator Abnormality = 1 << iota // non-canonical separator used
	AbnormalCurrent                           // contains a "." component
	AbnormalParent                            // contains a ".." component
)

// core is the shared representation of Any and Dir: a textual form that
// never ends in a separator (except when it names a filesystem root), plus
// a marker recording whether - and with which separator - the original text
// ended in one.
type core struct {
	osType OSType
	s      string
	trail  byte // 0 if the original text had no trailing separator
}

// Any is a path that may designate a file or a directory.
type Any struct{ c core }

// Dir is a path guaranteed to carry a trailing separator in its
// representation. Casting an Any to Dir appends the canonical separator if
// absent; casting back to Any is value-preserving.
type Dir struct{ c core }

// New constructs an Any from its textual form for the current platform. A
// trailing separator is stripped and recorded in the marker; other
// separators are kept as written and "."/".." are not resolved.
func New(s string) (Any, error) {
	return NewOS(Current, s)
}

// NewOS is New parameterized by OSType, for cross-platform testing.
func NewOS(osType OSType, s string) (Any, error) {
	c, err := newCore(osType, s)
	if err != nil {
		return Any{}, err
	}

	return Any{c: c}, nil
}

// NewExact constructs an Any only if s is already in canonical textual form
// (no edits required); otherwise it returns the zero Any and ok=false. It
// never returns an error.
func NewExact(s string) (p Any, ok bool) {
	return NewExactOS(Current, s)
}

// NewExactOS is NewExact parameterized by OSType.
func NewExactOS(osType OSType, s string) (p Any, ok bool) {
	c, err := newCore(osType, s)
	if err != nil {
		return Any{}, false
	}

	if c.String() != s && c.Repr() != s {
		return Any{}, false
	}

	return Any{c: c}, true
}

func newCore(osType OSType, s string) (core, error) {
	if s == "" {
		return core{osType: osType}, nil
	}

	trail := byte(0)
	last := s[len(s)-1]

	if IsSeparator(osType, last) && !isRootText(osType, s) {
		trail = last
		s = s[:len(s)-1]
	}

	if s == "" {
		// the whole string was a single separator: POSIX root.
		return core{osType: osType, s: string(Separator(osType)), trail: trail}, nil
	}

	return core{osType: osType, s: s, trail: trail}, nil
}

// isRootText reports whether s, taken verbatim, already names a root: "/" on
// POSIX, or "X:" / "X:\" / "X:/" on Windows.
func isRootText(osType OSType, s string) bool {
	if osType != OSWindows {
		return s == string(SepPosix)
	}

	if len(s) == 2 && s[1] == ':' {
		return true
	}

	if len(s) == 3 && s[1] == ':' && IsSeparator(osType, s[2]) {
		return true
	}

	return false
}

// String returns the textual form without a trailing separator, except for
// a filesystem root where it is just the root designator.
func (c core) String() string {
	return c.s
}

// Repr returns the textual form with the original trailing separator
// restored, if there was one.
func (c core) Repr() string {
	if c.trail == 0 || c.s == "" {
		return c.s
	}

	if isRootText(c.osType, c.s) && c.s[len(c.s)-1] != 0 && IsSeparator(c.osType, c.s[len(c.s)-1]) {
		return c.s
	}

	return c.s + string(c.trail)
}

// ---- Any methods ----

// String returns the textual form without a trailing separator.
func (p Any) String() string { return p.c.String() }

// Repr returns the textual form, preserving the original trailing separator.
func (p Any) Repr() string { return p.c.Repr() }

// OSType returns the platform this path was constructed for.
func (p Any) OSType() OSType { return p.c.osType }

// Empty reports whether the path has no textual content.
func (p Any) Empty() bool { return p.c.s == "" }

// Simple reports whether the path has a single component and is relative
// (i.e. contains no separator).
func (p Any) Simple() bool {
	if p.c.s == "" || p.Absolute() {
		return p.c.s == ""
	}

	for i := 0; i < len(p.c.s); i++ {
		if IsSeparator(p.c.osType, p.c.s[i]) {
			return false
		}
	}

	return true
}

// Absolute reports whether the path is rooted.
func (p Any) Absolute() bool {
	s := p.c.s
	if s == "" {
		return false
	}

	if p.c.osType == OSWindows {
		if len(s) >= 2 && s[1] == ':' {
			return len(s) == 2 || IsSeparator(p.c.osType, s[2])
		}

		return IsSeparator(p.c.osType, s[0])
	}

	return IsSeparator(p.c.osType, s[0])
}

// Relative reports whether the path is not absolute.
func (p Any) Relative() bool { return !p.Absolute() }

// Root reports whether the path names exactly a filesystem root.
func (p Any) Root() bool {
	return isRootText(p.c.osType, p.c.s)
}

// Leaf returns the last path component (the base name with no directory).
func (p Any) Leaf() string {
	if p.c.s == "" || p.Root() {
		return ""
	}

	s := p.c.s
	sep := Separator(p.c.osType)

	if i := strings.LastIndexByte(s, sep); i != -1 {
		return s[i+1:]
	}

	if p.c.osType == OSWindows {
		if i := strings.LastIndexByte(s, SepWindowsAlt); i != -1 {
			return s[i+1:]
		}

		if len(s) >= 2 && s[1] == ':' {
			return s[2:]
		}
	}

	return s
}

// Directory returns the path without its final component. Empty if the
// path is a root or has no directory part.
func (p Any) Directory() Dir {
	if p.c.s == "" || p.Root() {
		return Dir{}
	}

	leaf := p.Leaf()
	dirPart := p.c.s[:len(p.c.s)-len(leaf)]

	if dirPart == "" {
		return Dir{}
	}

	c, _ := newCore(p.c.osType, dirPart)
	c.trail = Separator(p.c.osType)

	return Dir{c: c}
}

// Base returns the Leaf with its final extension removed.
func (p Any) Base() string {
	leaf := p.Leaf()
	if i := strings.LastIndexByte(leaf, '.'); i > 0 {
		return leaf[:i]
	}

	return leaf
}

// Ext returns the final extension of Leaf, including the leading dot, or
// empty if there is none.
func (p Any) Ext() string {
	leaf := p.Leaf()
	if i := strings.LastIndexByte(leaf, '.'); i > 0 {
		return leaf[i:]
	}

	return ""
}

// ToDir casts p to a Dir, appending the canonical separator if absent.
func (p Any) ToDir() Dir {
	c := p.c
	c.trail = Separator(p.c.osType)

	return Dir{c: c}
}

// Any returns d viewed as an Any (value-preserving).
func (d Dir) Any() Any { return Any{c: d.c} }

// String returns the textual form without a trailing separator.
func (d Dir) String() string { return d.c.String() }

// Repr always carries a trailing separator for a Dir.
func (d Dir) Repr() string {
	if d.c.s == "" {
		return ""
	}

	return d.c.s + string(Separator(d.c.osType))
}

// OSType returns the platform this path was constructed for.
func (d Dir) OSType() OSType { return d.c.osType }

// Join implements the "operator/" of §4.A: dir / any -> any.
func (d Dir) Join(rhs Any) Any {
	if d.c.s == "" {
		return rhs
	}

	if rhs.c.s == "" {
		return d.Any()
	}

	sep := string(Separator(d.c.osType))
	base := d.c.s

	if d.Any().Root() {
		joined := base + rhs.c.s

		if rhs.Absolute() {
			joined = base + strings.TrimLeft(rhs.c.s, string(Separator(rhs.c.osType)))
		}

		c, _ := newCore(d.c.osType, joined)
		c.trail = rhs.c.trail

		return Any{c: c}
	}

	joined := base + sep + strings.TrimPrefix(rhs.c.s, sep)

	c, _ := newCore(d.c.osType, joined)
	c.trail = rhs.c.trail

	return Any{c: c}
}
