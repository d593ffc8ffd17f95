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

package fdio

import "time"

// Ready holds, element-for-element with the read/write slices passed to
// Select, whether that descriptor was found ready.
type Ready struct {
	Read  []bool
	Write []bool
}

// anyReady reports whether r has at least one true entry.
func (r Ready) anyReady() bool {
	for _, v := range r.Read {
		if v {
			return true
		}
	}

	for _, v := range r.Write {
		if v {
			return true
		}
	}

	return false
}

// Select waits until a descriptor in read or write is readable/writable
// respectively, or timeout elapses, per §4.C's fdselect. A NullFD entry is
// always reported not-ready and never blocks the wait. A negative timeout
// blocks indefinitely; a zero timeout polls once without waiting.
//
// On Windows, write must be empty: named and anonymous pipes expose no
// write-readiness primitive, so only read-readiness is supported there (see
// select_windows.go).
func Select(read, write []FD, timeout time.Duration) (Ready, error) {
	return platformSelect(read, write, timeout)
}
