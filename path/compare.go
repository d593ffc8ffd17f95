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

import "strings"

// Equal compares p and q per §3.1: ignores the trailing separator marker
// except when either path is a root, is case-sensitive on POSIX and
// case-insensitive (ASCII fold) on Windows, and treats all recognized
// separators as equal.
func (p Any) Equal(q Any) bool {
	a, b := p, q

	if a.Root() || b.Root() {
		return a.Repr() == b.Repr()
	}

	a.Canonicalize(true)
	b.Canonicalize(true)

	as, bs := a.c.s, b.c.s

	if !CaseSensitive(p.c.osType) {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}

	return as == bs
}
