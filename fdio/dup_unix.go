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

//go:build unix

package fdio

import (
	"os"

	"golang.org/x/sys/unix"
)

// Dup duplicates fd with close-on-exec set atomically (F_DUPFD_CLOEXEC) and,
// when closeOnExec is false, clears it with a following F_SETFD. Both steps
// run under SpawnMu so a concurrent Spawn on another goroutine can never
// inherit the duplicate unintentionally.
func Dup(fd FD, closeOnExec bool) (FD, error) {
	SpawnMu.Lock()
	defer SpawnMu.Unlock()

	nfd, err := unix.FcntlInt(fd.Fd(), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return FD{}, err
	}

	if !closeOnExec {
		if _, err := unix.FcntlInt(uintptr(nfd), unix.F_SETFD, 0); err != nil {
			unix.Close(nfd)

			return FD{}, err
		}
	}

	return FromFile(os.NewFile(uintptr(nfd), fd.File().Name())), nil
}

// setCloseOnExec toggles FD_CLOEXEC on fd in place, under SpawnMu.
func setCloseOnExec(fd FD, enabled bool) error {
	SpawnMu.Lock()
	defer SpawnMu.Unlock()

	flag := 0
	if enabled {
		flag = unix.FD_CLOEXEC
	}

	_, err := unix.FcntlInt(fd.Fd(), unix.F_SETFD, flag)

	return err
}

// setNonblock toggles O_NONBLOCK on fd.
func setNonblock(fd FD, enabled bool) error {
	return unix.SetNonblock(int(fd.Fd()), enabled)
}
