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

package fsx

import (
	"os"
	"path/filepath"
)

// DanglingMode controls how a directory iterator treats a symlink entry
// whose target does not resolve, per §4.D's dir_iterator modes.
type DanglingMode uint8

const (
	// NoFollow reports each entry as Lstat sees it; symlinks are never
	// dereferenced, so dangling ones are indistinguishable from live ones.
	NoFollow DanglingMode = iota
	// DetectDangling dereferences symlink entries and reports a dangling or
	// inaccessible one as TypeSymlink (target type unknown), without an error.
	DetectDangling
	// IgnoreDangling dereferences symlink entries and silently skips a
	// dangling one.
	IgnoreDangling
)

// DirEntry is one entry produced by Walk, path joined with its directory.
type DirEntry struct {
	Path string
	Type EntryType
}

// Walk visits every entry directly inside dir (no recursion; combine with
// PathSearch for recursive traversal), in directory order, per §4.D's
// dir_iterator. A nil fn error continues the walk; any other error stops
// it and is returned.
func Walk(dir string, mode DanglingMode, fn func(DirEntry) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, de := range entries {
		p := filepath.Join(dir, de.Name())

		typ, skip, err := resolveEntryType(p, de, mode)
		if err != nil {
			return err
		}

		if skip {
			continue
		}

		if err := fn(DirEntry{Path: p, Type: typ}); err != nil {
			return err
		}
	}

	return nil
}

func resolveEntryType(p string, de os.DirEntry, mode DanglingMode) (typ EntryType, skip bool, err error) {
	info, err := de.Info()
	if err != nil {
		return TypeUnknown, false, err
	}

	typ = entryType(info.Mode())

	if typ != TypeSymlink || mode == NoFollow {
		return typ, false, nil
	}

	target, statErr := os.Stat(p)
	if statErr != nil {
		if mode == IgnoreDangling {
			return TypeUnknown, true, nil
		}

		// DetectDangling: a missing or inaccessible target is reported as
		// the symlink entry itself (target type unknown), never as an
		// error that would abort the walk.
		return TypeSymlink, false, nil
	}

	return entryType(target.Mode()), false, nil
}
