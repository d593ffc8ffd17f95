//
//  Copyright 2020 The AVFS authors
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

// Package path implements the cross-platform path value type shared by the
// rest of coreshell: normalization, decomposition, iteration and comparison,
// with separate POSIX and Windows separator/comparison semantics.
package path

import "runtime"

// OSType identifies the separator and comparison semantics a Path uses.
type OSType uint8

const (
	// OSUnknown falls back to POSIX semantics.
	OSUnknown OSType = iota
	OSPosix
	OSWindows
)

// Current is the OSType of the platform coreshell is running on.
var Current = func() OSType {
	if runtime.GOOS == "windows" {
		return OSWindows
	}

	return OSPosix
}()

// Separator characters per §6.1.
const (
	SepPosix       = '/'
	SepWindows     = '\\'
	SepWindowsAlt  = '/'
	ListSepPosix   = ':'
	ListSepWindows = ';'
)

// Separator returns the canonical directory separator for osType.
func Separator(osType OSType) byte {
	if osType == OSWindows {
		return SepWindows
	}

	return SepPosix
}

// ListSeparator returns the PATH-list separator for osType.
func ListSeparator(osType OSType) byte {
	if osType == OSWindows {
		return ListSepWindows
	}

	return ListSepPosix
}

// IsSeparator reports whether c is a recognized directory separator for osType.
// On Windows both '\\' and '/' are recognized; on POSIX only '/'.
func IsSeparator(osType OSType, c byte) bool {
	if osType == OSWindows {
		return c == SepWindows || c == SepWindowsAlt
	}

	return c == SepPosix
}

// CaseSensitive reports whether path comparison is case-sensitive for osType.
func CaseSensitive(osType OSType) bool {
	return osType != OSWindows
}
