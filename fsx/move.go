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
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/valyala/fastrand"
)

// MoveFlag controls MoveEntry's behavior, per §4.D's mventry options.
type MoveFlag uint8

const (
	// OverwriteContent allows replacing an existing destination. Without
	// it, MoveEntry fails with os.ErrExist if dst already exists.
	OverwriteContent MoveFlag = 1 << iota
)

// MoveEntry moves the entry at src to dst, per §4.D's mventry. Without
// OverwriteContent, it fails if dst exists at all, including as a dangling
// symlink. If dst exists, src and dst must be the same kind (both
// directories or both non-directories); otherwise it fails with
// syscall.ENOTDIR. It first tries an atomic rename; on a cross-device error
// it falls back to copy-then-remove through a collision-resistant sibling
// temp name, so a reader of dst's directory never observes a
// partially-written file.
func MoveEntry(dst, src string, flags MoveFlag) error {
	srcEntry, srcExists, err := Entry(src)
	if err != nil {
		return err
	}

	if !srcExists {
		return &os.PathError{Op: "move", Path: src, Err: os.ErrNotExist}
	}

	dstEntry, dstExists, err := Entry(dst)
	if err != nil {
		return err
	}

	if dstExists {
		if flags&OverwriteContent == 0 {
			return &os.LinkError{Op: "move", Old: src, New: dst, Err: os.ErrExist}
		}

		if (srcEntry.Type == TypeDirectory) != (dstEntry.Type == TypeDirectory) {
			return &os.LinkError{Op: "move", Old: src, New: dst, Err: syscall.ENOTDIR}
		}
	}

	prepareDestForRename(dst)

	err = renameRetry(dst, src)
	if err == nil {
		return nil
	}

	if !isCrossDevice(err) {
		return err
	}

	if srcEntry.Type == TypeSymlink {
		target, rerr := os.Readlink(src)
		if rerr != nil {
			return rerr
		}

		if err := moveViaTemp(dst, func(tmp string) error {
			return os.Symlink(target, tmp)
		}); err != nil {
			return err
		}

		return os.Remove(src)
	}

	if srcEntry.Type == TypeDirectory {
		return fmt.Errorf("fsx: cross-device move of directory %q unsupported", src)
	}

	if err := moveViaTemp(dst, func(tmp string) error {
		return CopyFile(tmp, src, PreservePermissions|PreserveTimestamps)
	}); err != nil {
		return err
	}

	return os.Remove(src)
}

// moveViaTemp materializes the new entry at a collision-resistant sibling
// temp name via write, then renames it into place over dst.
func moveViaTemp(dst string, write func(tmp string) error) error {
	tmp := filepath.Join(filepath.Dir(dst), fmt.Sprintf(".coreshell-move-%08x", fastrand.Uint32n(0xffffffff)))

	if err := write(tmp); err != nil {
		os.Remove(tmp)

		return err
	}

	if err := renameRetry(dst, tmp); err != nil {
		os.Remove(tmp)

		return err
	}

	return nil
}
