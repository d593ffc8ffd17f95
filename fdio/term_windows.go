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

//go:build windows

package fdio

import (
	"strings"

	"golang.org/x/sys/windows"
)

// msysPtyHeuristic detects an MSYS pty pipe by its kernel object name
// containing a "-ptyN-" marker, the heuristic MSYS-aware terminals (mintty,
// git-bash) rely on in the absence of a real console handle. Go's
// os.File.Name() preserves the path a handle was opened with, which for an
// MSYS pty side is the "\\.\pipe\msys-....-ptyN-..." name.
func msysPtyHeuristic(fd FD) bool {
	n := fd.File().Name()

	return strings.Contains(n, "-pty") && strings.Contains(n, "msys-")
}

// enableVTProcessing best-effort enables
// ENABLE_VIRTUAL_TERMINAL_PROCESSING on fd's console mode.
func enableVTProcessing(fd FD) {
	h := windows.Handle(fd.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return
	}

	_ = windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
