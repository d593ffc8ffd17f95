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

import "os"

// Entry stats path without following a trailing symlink, and reports the
// PathEntry plus whether the path exists at all. A broken symlink still
// exists, reported as TypeSymlink.
func Entry(path string) (PathEntry, bool, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return PathEntry{}, false, nil
		}

		return PathEntry{}, false, err
	}

	return PathEntry{Type: entryType(fi.Mode()), Size: fi.Size()}, true, nil
}

// FileExists reports whether path exists and, after following symlinks,
// names a regular file.
func FileExists(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return fi.Mode().IsRegular(), nil
}

// DirExists reports whether path exists and, after following symlinks,
// names a directory.
func DirExists(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return fi.IsDir(), nil
}

// EntryExists reports whether path exists at all (following symlinks; a
// dangling symlink reports false).
func EntryExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
