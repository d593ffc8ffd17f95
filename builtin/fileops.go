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

package builtin

import (
	"os"
	"time"

	"github.com/coreshell/coreshell/fsx"
)

// Cp copies src to dst, per the cp builtin. With overwrite, an existing
// dst is truncated and rewritten in place; without it, an existing dst is
// an error.
func Cp(dst, src string, overwrite bool) error {
	flags := fsx.PreservePermissions | fsx.PreserveTimestamps
	if overwrite {
		flags |= fsx.Overwrite
	}

	return fsx.CopyFile(dst, src, flags)
}

// Mv moves src to dst, per the mv builtin. With overwrite, an existing dst
// of the same kind is replaced; without it, an existing dst is an error.
func Mv(dst, src string, overwrite bool) error {
	var flags fsx.MoveFlag
	if overwrite {
		flags |= fsx.OverwriteContent
	}

	return fsx.MoveEntry(dst, src, flags)
}

// Rm removes the file (or symlink) at path, per the rm builtin. ok is
// false if path did not exist.
func Rm(path string) (ok bool, err error) {
	return fsx.TryRmFile(path)
}

// Rmdir removes the directory at path, per the rmdir builtin. With
// recursive, its contents (and path itself) are removed too; without it, a
// non-empty directory is an error. With ignoreMissing, a non-existent path
// is not an error.
func Rmdir(path string, recursive, ignoreMissing bool) (ok bool, err error) {
	if recursive {
		return fsx.RmdirRecursive(path, true, ignoreMissing)
	}

	ok, err = fsx.TryRmdir(path)
	if err != nil || ok || ignoreMissing {
		return ok, err
	}

	return false, &os.PathError{Op: "rmdir", Path: path, Err: os.ErrNotExist}
}

// Mkdir creates the directory at path, per the mkdir builtin. With
// parents, missing ancestor directories are created as needed.
func Mkdir(path string, parents bool, perm os.FileMode) (ok bool, err error) {
	if parents {
		return fsx.TryMkdirAll(path, perm)
	}

	return fsx.TryMkdir(path, perm)
}

// Ln creates newname linked to oldname, per the ln builtin: a symbolic
// link if symbolic is set, otherwise a hard link.
func Ln(oldname, newname string, symbolic bool) error {
	if symbolic {
		return fsx.Symlink(oldname, newname)
	}

	return fsx.Hardlink(oldname, newname)
}

// Touch creates path if it does not exist, and updates its modification
// time to now in either case, per the touch builtin.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	now := time.Now()

	return os.Chtimes(path, now, now)
}
