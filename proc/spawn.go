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

package proc

import (
	"os"

	"github.com/coreshell/coreshell/fdio"
)

// StreamKind selects how one of a spawned child's standard streams is
// wired, per §4.E's redirection algebra.
type StreamKind uint8

const (
	// Inherit passes the parent's own stream through unchanged.
	Inherit StreamKind = iota
	// Discard redirects the stream to the null device.
	Discard
	// Piped creates an OS pipe; the parent keeps the opposite end,
	// returned on Process.
	Piped
	// FromFD hands the child an already-open descriptor the caller owns,
	// e.g. the read end of a previous process's Stdout when chaining a
	// pipeline.
	FromFD
)

// Redirect describes one standard stream's wiring for Spawn.
type Redirect struct {
	Kind StreamKind
	FD   fdio.FD // meaningful only when Kind == FromFD
}

// RedirectInherit, RedirectNull and RedirectPipe are the stateless
// Redirect values; use RedirectFromFD for FromFD.
var (
	RedirectInherit = Redirect{Kind: Inherit}
	RedirectNull    = Redirect{Kind: Discard}
	RedirectPipe    = Redirect{Kind: Piped}
)

// RedirectFromFD wires a standard stream directly to an already-open
// descriptor, e.g. to chain one process's output into another's input.
func RedirectFromFD(fd fdio.FD) Redirect {
	return Redirect{Kind: FromFD, FD: fd}
}

// Options configures Spawn.
type Options struct {
	// Dir overrides the child's working directory; if empty,
	// Overrides.Dir (or the process cwd) is used.
	Dir string
	// Env overrides the child's environment; if nil, Overrides.Env (or
	// os.Environ()) is used.
	Env []string
	// Overrides supplies the §5 thread-local-equivalent cwd/env, per
	// Overrides' doc comment.
	Overrides *Overrides

	Stdin, Stdout, Stderr Redirect
}

// Process is a spawned child process and the parent-side ends of any Piped
// standard streams, per §4.E.
type Process struct {
	osProc *os.Process

	Path Path

	// Stdin, Stdout, Stderr are the parent-side fdio.FD for any stream
	// whose Redirect.Kind was Piped, else fdio.NullFD.
	Stdin, Stdout, Stderr fdio.FD

	wait waitState
}

type resolved struct {
	child     *os.File
	parent    fdio.FD
	ownsChild bool
}

func stdFile(idx int) *os.File {
	switch idx {
	case 0:
		return os.Stdin
	case 1:
		return os.Stdout
	default:
		return os.Stderr
	}
}

func resolveRedirect(r Redirect, idx int) (resolved, error) {
	switch r.Kind {
	case Inherit:
		return resolved{child: stdFile(idx)}, nil

	case Discard:
		fd, err := fdio.OpenNull()
		if err != nil {
			return resolved{}, err
		}

		return resolved{child: fd.File(), ownsChild: true}, nil

	case FromFD:
		return resolved{child: r.FD.File()}, nil

	case Piped:
		p, err := fdio.OpenPipe()
		if err != nil {
			return resolved{}, err
		}

		if idx == 0 {
			return resolved{child: p.Read.File(), parent: p.Write, ownsChild: true}, nil
		}

		return resolved{child: p.Write.File(), parent: p.Read, ownsChild: true}, nil

	default:
		return resolved{child: stdFile(idx)}, nil
	}
}

// Spawn starts name (resolved per ResolvePath) with argv as its arguments
// (argv[0] itself is not included; Spawn supplies Path.Recall as argv[0]),
// per §4.E's process_start. It holds fdio.SpawnMu around the process start
// itself (not around path resolution or stream setup), matching the
// process-spawn mutex of §5.
func Spawn(name string, argv []string, opts Options) (*Process, error) {
	p, err := ResolvePath(name, opts.Overrides)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = opts.Overrides.dir()
	}

	env := opts.Env
	if env == nil {
		env = opts.Overrides.env()
	}

	if env == nil {
		env = os.Environ()
	}

	redirects := [3]Redirect{opts.Stdin, opts.Stdout, opts.Stderr}

	var resolvedStreams [3]resolved

	for i, r := range redirects {
		rr, err := resolveRedirect(r, i)
		if err != nil {
			closeOwned(resolvedStreams[:i])

			return nil, err
		}

		resolvedStreams[i] = rr
	}

	fullArgv := append([]string{p.Recall}, argv...)

	fdio.SpawnMu.Lock()

	osProc, startErr := startProcessRetry(p.Effect, fullArgv, &os.ProcAttr{
		Dir:   dir,
		Env:   env,
		Files: []*os.File{resolvedStreams[0].child, resolvedStreams[1].child, resolvedStreams[2].child},
	})

	fdio.SpawnMu.Unlock()

	closeOwnedChildEnds(resolvedStreams[:])

	if startErr != nil {
		closeParentEnds(resolvedStreams[:])

		return nil, startErr
	}

	return &Process{
		osProc: osProc,
		Path:   p,
		Stdin:  resolvedStreams[0].parent,
		Stdout: resolvedStreams[1].parent,
		Stderr: resolvedStreams[2].parent,
	}, nil
}

func closeOwned(rs []resolved) {
	for _, r := range rs {
		if r.ownsChild && r.child != nil {
			r.child.Close()
		}

		if r.parent.Valid() {
			r.parent.Close()
		}
	}
}

// closeOwnedChildEnds closes the child-side descriptor of every stream we
// opened (null device, pipe write/read end), now that the child process
// has inherited its own copy; keeping the parent's copy open would leave a
// pipe's write end held open after the child exits, hanging EOF detection.
func closeOwnedChildEnds(rs []resolved) {
	for _, r := range rs {
		if r.ownsChild && r.child != nil {
			r.child.Close()
		}
	}
}

func closeParentEnds(rs []resolved) {
	for _, r := range rs {
		if r.parent.Valid() {
			r.parent.Close()
		}
	}
}
