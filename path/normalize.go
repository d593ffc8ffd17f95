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
	"os"
	"path/filepath"
	"strings"
)

// Abnormalities reports which of the canonical-form invariants p violates:
// a non-canonical separator, a "." component, or a ".." component.
func (p Any) Abnormalities() Abnormality {
	var a Abnormality

	osType := p.c.osType
	canon := Separator(osType)

	it := NewIterator(p)
	first := true

	for it.Next() {
		part := it.Part()

		if first && part == "" {
			first = false
			continue
		}

		first = false

		switch part {
		case ".":
			a |= AbnormalCurrent
		case "..":
			a |= AbnormalParent
		}
	}

	for i := 0; i < len(p.c.s); i++ {
		c := p.c.s[i]
		if IsSeparator(osType, c) && c != canon {
			a |= AbnormalSeparator
			break
		}
	}

	return a
}

// Normalized reports whether p is already in normal form: no "."/".."
// components and (if sep is true) only canonical separators.
func (p Any) Normalized(sep bool) bool {
	a := p.Abnormalities()
	if a&(AbnormalCurrent|AbnormalParent) != 0 {
		return false
	}

	if sep && a&AbnormalSeparator != 0 {
		return false
	}

	return true
}

// Canonicalize unifies separators in place: every recognized separator
// (the alternate '/' on Windows, if altSep is true) becomes the canonical
// one.
func (p *Any) Canonicalize(altSep bool) {
	osType := p.c.osType
	canon := Separator(osType)

	var b strings.Builder

	b.Grow(len(p.c.s))

	for i := 0; i < len(p.c.s); i++ {
		c := p.c.s[i]
		if IsSeparator(osType, c) && (altSep || c != SepWindowsAlt) {
			b.WriteByte(canon)
		} else {
			b.WriteByte(c)
		}
	}

	p.c.s = b.String()

	if p.c.trail != 0 {
		p.c.trail = canon
	}
}

// Normalize collapses "." and ".." components and unifies separators to
// canonical form, in place. It fails with ErrInvalid if a ".." would pop
// past an absolute root. For a relative path that normalizes to nothing,
// curEmpty selects between "" (curEmpty=true) and "." (curEmpty=false).
func (p *Any) Normalize(actual bool, curEmpty bool) error {
	osType := p.c.osType
	abs := p.Absolute()

	var volume string
	s := p.c.s

	if osType == OSWindows && len(s) >= 2 && s[1] == ':' {
		volume = s[:2]
		s = s[2:]
	}

	parts := splitComponents(osType, s)

	stack := make([]string, 0, len(parts))

	for _, part := range parts {
		switch part {
		case "":
			continue
		case ".":
			continue
		case "..":
			if len(stack) > 0 && stack[len(stack)-1] != ".." {
				stack = stack[:len(stack)-1]
				continue
			}

			if abs {
				return ErrInvalid
			}

			stack = append(stack, "..")
		default:
			stack = append(stack, part)
		}
	}

	canon := string(Separator(osType))

	var result string

	switch {
	case abs:
		result = canon + strings.Join(stack, canon)
	case len(stack) == 0:
		if curEmpty {
			result = ""
		} else {
			result = "."
		}
	default:
		result = strings.Join(stack, canon)
	}

	c, err := newCore(osType, volume+result)
	if err != nil {
		return err
	}

	c.trail = p.c.trail
	p.c = c

	return nil
}

// splitComponents splits s (with the volume name already stripped) on any
// recognized separator for osType.
func splitComponents(osType OSType, s string) []string {
	if s == "" {
		return nil
	}

	out := make([]string, 0, 8)
	start := 0

	for i := 0; i < len(s); i++ {
		if IsSeparator(osType, s[i]) {
			out = append(out, s[start:i])
			start = i + 1
		}
	}

	out = append(out, s[start:])

	return out
}

// Complete prepends the current working directory if p is relative, in
// place.
func (p *Any) Complete() error {
	if p.Absolute() {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	base, err := New(wd)
	if err != nil {
		return err
	}

	*p = base.ToDir().Join(*p)

	return nil
}

// Realize resolves symlinks in place via the platform's realpath
// equivalent, in addition to what Complete does.
func (p *Any) Realize() error {
	if err := p.Complete(); err != nil {
		return err
	}

	resolved, err := filepath.EvalSymlinks(p.c.s)
	if err != nil {
		return err
	}

	c, err := newCore(p.c.osType, resolved)
	if err != nil {
		return err
	}

	c.trail = p.c.trail
	p.c = c

	return nil
}

// Sub reports whether q is a normalized prefix of p at component
// boundaries. An empty q is a prefix of every p.
func (p Any) Sub(q Any) bool {
	if q.c.s == "" {
		return true
	}

	pn, qn := p, q
	_ = pn.Normalize(false, true)
	_ = qn.Normalize(false, true)

	ps, qs := pn.c.s, qn.c.s

	if !CaseSensitive(p.c.osType) {
		ps = strings.ToLower(ps)
		qs = strings.ToLower(qs)
	}

	if ps == qs {
		return true
	}

	sep := string(Separator(p.c.osType))
	prefix := qs

	if !strings.HasSuffix(prefix, sep) {
		prefix += sep
	}

	return strings.HasPrefix(ps, prefix)
}

// Sup reports whether p is a normalized prefix of q, the inverse of Sub.
func (p Any) Sup(q Any) bool {
	return q.Sub(p)
}

// RelativeTo expresses p relative to base. It fails with ErrCrossRoot if p
// and base are both absolute but share no common root (e.g. different
// Windows drives).
func (p Any) RelativeTo(base Dir) (Any, error) {
	pn, bn := p, base.Any()
	if err := pn.Normalize(false, true); err != nil {
		return Any{}, err
	}

	if err := bn.Normalize(false, true); err != nil {
		return Any{}, err
	}

	if pn.Absolute() != bn.Absolute() {
		return Any{}, ErrCrossRoot
	}

	pParts := splitComponents(p.c.osType, strings.TrimPrefix(pn.c.s, string(Separator(p.c.osType))))
	bParts := splitComponents(p.c.osType, strings.TrimPrefix(bn.c.s, string(Separator(p.c.osType))))

	i := 0
	for i < len(pParts) && i < len(bParts) {
		same := pParts[i] == bParts[i]
		if !CaseSensitive(p.c.osType) {
			same = strings.EqualFold(pParts[i], bParts[i])
		}

		if !same {
			break
		}

		i++
	}

	if i == 0 && bn.Absolute() && len(bParts) > 0 && len(pParts) > 0 {
		// Different Windows drive roots share nothing in common.
		if p.c.osType == OSWindows && !strings.EqualFold(pParts[0], bParts[0]) && len(pn.c.s) >= 2 && pn.c.s[1] == ':' {
			return Any{}, ErrCrossRoot
		}
	}

	up := make([]string, len(bParts)-i)
	for j := range up {
		up[j] = ".."
	}

	rest := pParts[i:]
	comps := append(up, rest...)

	if len(comps) == 0 {
		return New(".")
	}

	return New(strings.Join(comps, string(Separator(p.c.osType))))
}
