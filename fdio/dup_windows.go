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
	"os"

	"golang.org/x/sys/windows"
)

// Dup duplicates fd via DuplicateHandle, setting handle inheritability to
// the inverse of closeOnExec (Windows has no CLOEXEC; inheritability is the
// handle-table flag checked at CreateProcess time), under SpawnMu.
func Dup(fd FD, closeOnExec bool) (FD, error) {
	SpawnMu.Lock()
	defer SpawnMu.Unlock()

	proc := windows.CurrentProcess()

	var dup windows.Handle

	err := windows.DuplicateHandle(proc, windows.Handle(fd.Fd()), proc, &dup, 0, !closeOnExec, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return FD{}, err
	}

	return FromFile(os.NewFile(uintptr(dup), fd.File().Name())), nil
}

// setCloseOnExec toggles handle inheritability on fd in place via
// SetHandleInformation, under SpawnMu.
func setCloseOnExec(fd FD, enabled bool) error {
	SpawnMu.Lock()
	defer SpawnMu.Unlock()

	var mask uint32

	if !enabled {
		mask = windows.HANDLE_FLAG_INHERIT
	}

	return windows.SetHandleInformation(windows.Handle(fd.Fd()), windows.HANDLE_FLAG_INHERIT, mask)
}

// setNonblock is a no-op placeholder on Windows: pipe non-blocking mode is
// implemented by polling with PeekNamedPipe in Select, not a handle flag.
func setNonblock(fd FD, enabled bool) error {
	return nil
}
