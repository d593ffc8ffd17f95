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

// TryRmdir removes the empty directory at path, per §4.D's try_rmdir. It
// reports ok=true if path was removed, ok=false (nil error) if it did not
// exist, and ErrNotEmpty if it exists but is not empty.
func TryRmdir(path string) (ok bool, err error) {
	isDir, err := DirExists(path)
	if err != nil {
		return false, err
	}

	if !isDir {
		exists, err := EntryExists(path)
		if err != nil {
			return false, err
		}

		if !exists {
			return false, nil
		}
	}

	err = os.Remove(path)
	if err == nil {
		return true, nil
	}

	if isNotEmpty(err) {
		return false, ErrNotEmpty
	}

	return false, err
}

// RmdirRecursive removes everything beneath path, and path itself when
// includeSelf is set, per §4.D's rmdir_r(p, include_self, ignore_error). If
// path does not exist, it reports ok=false: with ignoreError set, the error
// is nil; without it, a not-found error is raised instead.
func RmdirRecursive(path string, includeSelf, ignoreError bool) (ok bool, err error) {
	exists, err := EntryExists(path)
	if err != nil {
		return false, err
	}

	if !exists {
		if ignoreError {
			return false, nil
		}

		return false, &os.PathError{Op: "rmdir_r", Path: path, Err: os.ErrNotExist}
	}

	if includeSelf {
		if err := os.RemoveAll(path); err != nil {
			if ignoreError {
				return false, nil
			}

			return false, err
		}

		return true, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if ignoreError {
			return false, nil
		}

		return false, err
	}

	for _, de := range entries {
		if err := os.RemoveAll(filepath.Join(path, de.Name())); err != nil {
			if ignoreError {
				continue
			}

			return false, err
		}
	}

	return true, nil
}
