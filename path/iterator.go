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

// Iterator walks the components of a path left to right (or, run in
// Reverse, right to left). For an absolute POSIX path, the first component
// yielded is the empty string denoting the root; adapted from the teacher's
// generic PathIterator[T] to coreshell's concrete Any/Dir types.
//
// Sample code:
//
//	it := path.NewIterator(p)
//	for it.Next() {
//	  fmt.Println(it.Part())
//	}
type Iterator struct {
	p       Any
	start   int
	end     int
	reverse bool
	volLen  int
}

// NewIterator creates a forward iterator over p's components.
func NewIterator(p Any) *Iterator {
	it := &Iterator{p: p, volLen: volumeNameLen(p)}
	it.Reset()

	return it
}

// NewReverseIterator creates an iterator over p's components, right to left.
func NewReverseIterator(p Any) *Iterator {
	it := &Iterator{p: p, reverse: true, volLen: volumeNameLen(p)}
	it.Reset()

	return it
}

func volumeNameLen(p Any) int {
	if p.c.osType != OSWindows {
		return 0
	}

	if len(p.c.s) >= 2 && p.c.s[1] == ':' {
		return 2
	}

	return 0
}

// Reset rewinds the iterator to its initial position.
func (it *Iterator) Reset() {
	if it.reverse {
		it.start = len(it.p.c.s)
		it.end = len(it.p.c.s)

		return
	}

	it.end = it.volLen
}

// Next advances to the next component, returning false when exhausted.
func (it *Iterator) Next() bool {
	if it.reverse {
		return it.prev()
	}

	s := it.p.c.s
	it.start = it.end + 1

	if it.start > len(s) {
		it.end = it.start

		return false
	}

	if it.start == 1 && it.volLen == 0 && len(s) > 0 && IsSeparator(it.p.c.osType, s[0]) {
		// Root component: empty leaf denoting "/".
		it.start = 0
		it.end = 0

		return true
	}

	pos := indexSeparator(it.p.c.osType, s[it.start:])
	if pos == -1 {
		it.end = len(s)
	} else {
		it.end = it.start + pos
	}

	return true
}

func (it *Iterator) prev() bool {
	s := it.p.c.s
	if it.start <= it.volLen {
		return false
	}

	it.end = it.start
	last := indexLastSeparator(it.p.c.osType, s[it.volLen:it.end])

	if last == -1 {
		it.start = it.volLen
	} else {
		it.start = it.volLen + last + 1
	}

	return true
}

func indexSeparator(osType OSType, s string) int {
	for i := 0; i < len(s); i++ {
		if IsSeparator(osType, s[i]) {
			return i
		}
	}

	return -1
}

func indexLastSeparator(osType OSType, s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if IsSeparator(osType, s[i]) {
			return i
		}
	}

	return -1
}

// Part returns the current component.
func (it *Iterator) Part() string {
	return it.p.c.s[it.start:it.end]
}

// Start returns the start offset of the current component.
func (it *Iterator) Start() int { return it.start }

// End returns the end offset of the current component.
func (it *Iterator) End() int { return it.end }

// IsLast reports whether the current component is the last one.
func (it *Iterator) IsLast() bool {
	return it.end == len(it.p.c.s)
}

// VolumeName returns the leading volume name (Windows only, else "").
func (it *Iterator) VolumeName() string {
	return it.p.c.s[:it.volLen]
}
