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

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Term reports whether fd refers to a terminal. On Windows this also
// recognizes MSYS pty pipes heuristically, by the pipe's name containing a
// "-ptyN-" marker (see term_windows.go).
func Term(fd FD) bool {
	if !fd.Valid() {
		return false
	}

	if term.IsTerminal(int(fd.Fd())) {
		return true
	}

	return msysPtyHeuristic(fd)
}

// TermColor makes a best effort to enable ANSI/VT color processing on fd
// and reports whether color output can be used: on POSIX this is true
// whenever Term(fd) is true and $TERM is not "dumb"; on Windows it also
// attempts to enable ENABLE_VIRTUAL_TERMINAL_PROCESSING.
func TermColor(fd FD, enable bool) bool {
	if !Term(fd) {
		return false
	}

	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}

	if enable {
		enableVTProcessing(fd)
	}

	return true
}
