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
	"errors"
	"time"

	"golang.org/x/sys/windows"
)

const (
	pollStart = 500 * time.Microsecond
	pollCap   = 25 * time.Millisecond
)

// platformSelect has no native multiplexing primitive for pipes on Windows
// (WaitForMultipleObjects does not report pipe read-readiness), so it polls
// each read descriptor with PeekNamedPipe on an exponential backoff starting
// under 1ms and capped at 25ms. A broken pipe counts as ready, so the caller
// observes EOF rather than hanging. write must be empty.
func platformSelect(read, write []FD, timeout time.Duration) (Ready, error) {
	if len(write) > 0 {
		return Ready{}, errors.New("fdio: write-set Select is unsupported on Windows")
	}

	deadline := time.Time{}
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}

	backoff := pollStart

	for {
		ready := Ready{Read: make([]bool, len(read)), Write: make([]bool, 0)}

		for i, fd := range read {
			ready.Read[i] = fd.Valid() && pipeReadable(fd)
		}

		if ready.anyReady() || timeout == 0 {
			return ready, nil
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			return ready, nil
		}

		time.Sleep(backoff)

		backoff *= 2
		if backoff > pollCap {
			backoff = pollCap
		}
	}
}

// pipeReadable reports whether fd has data available or has reached
// end-of-stream. Non-pipe handles (regular files, console) always report
// ready, matching select(2)'s treatment of them.
func pipeReadable(fd FD) bool {
	h := windows.Handle(fd.Fd())

	var avail uint32

	err := windows.PeekNamedPipe(h, nil, 0, nil, &avail, nil)
	if err != nil {
		if errors.Is(err, windows.ERROR_BROKEN_PIPE) {
			return true
		}

		// Not a pipe (regular file, console, ...): treat as always ready.
		return true
	}

	return avail > 0
}
