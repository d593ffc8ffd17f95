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

// Package fdio implements buffered, fd-based streaming over OS file
// descriptors: open/dup/pipe/null-device primitives, blocking and
// non-blocking modes, readiness multiplexing, and a non-blocking
// line-oriented reader, as specified for component C.
package fdio

import (
	"os"
)

// SpawnMu is the process-wide mutex serializing (a) changes to a
// descriptor's inheritability/close-on-exec flag and (b) process creation,
// per §5's process-spawn mutex. proc.Spawn holds it for the whole fork(or
// CreateProcess)+exec window; Dup and Stream.SetCloseOnExec also take it
// briefly while flipping CLOEXEC so a concurrent spawn on another goroutine
// can never observe an intermediate state. OpenPipe does not take it: its
// descriptors are created close-on-exec.
var SpawnMu spawnMutex

// FD is an owning file descriptor: it closes the underlying OS descriptor
// on Close unless Release has been called. The zero FD is NullFD, "no
// descriptor".
type FD struct {
	f *os.File
}

// NullFD is the absent-descriptor sentinel.
var NullFD = FD{}

// FromFile takes ownership of an already-open *os.File.
func FromFile(f *os.File) FD { return FD{f: f} }

// Valid reports whether fd designates an actual open descriptor.
func (fd FD) Valid() bool { return fd.f != nil }

// File returns the underlying *os.File, or nil for NullFD.
func (fd FD) File() *os.File { return fd.f }

// Fd returns the raw OS descriptor/handle value.
func (fd FD) Fd() uintptr {
	if fd.f == nil {
		return ^uintptr(0)
	}

	return fd.f.Fd()
}

// Close closes the descriptor. Closing NullFD is a no-op.
func (fd FD) Close() error {
	if fd.f == nil {
		return nil
	}

	return fd.f.Close()
}

// Release detaches the *os.File from fd without closing it, returning it to
// the caller.
func (fd *FD) Release() *os.File {
	f := fd.f
	fd.f = nil

	return f
}

// Pipe is a pair of owning fds, both close-on-exec by default.
type Pipe struct {
	Read  FD
	Write FD
}

// OpenPipe returns a new Pipe per §4.C's fdopen_pipe.
func OpenPipe() (Pipe, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return Pipe{}, err
	}

	return Pipe{Read: FromFile(r), Write: FromFile(w)}, nil
}

// Close closes both ends of the pipe, ignoring a NullFD end.
func (p Pipe) Close() error {
	err1 := p.Read.Close()
	err2 := p.Write.Close()

	if err1 != nil {
		return err1
	}

	return err2
}
