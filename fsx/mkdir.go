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

// TryMkdir creates path as a directory with perm, per §4.D's try_mkdir: it
// reports ok=true if the directory was created, ok=false (with a nil error)
// if it already existed as a directory, and a non-nil error for any other
// failure (including the path existing as a non-directory).
func TryMkdir(path string, perm os.FileMode) (ok bool, err error) {
	err = os.Mkdir(path, perm&^UMask())
	if err == nil {
		return true, nil
	}

	if !os.IsExist(err) {
		return false, err
	}

	isDir, derr := DirExists(path)
	if derr != nil {
		return false, derr
	}

	if !isDir {
		return false, err
	}

	return false, nil
}

// TryMkdirAll creates path and any missing parents with perm, per §4.D's
// try_mkdir_p. It reports ok=true if at least the leaf directory was
// created by this call.
func TryMkdirAll(path string, perm os.FileMode) (ok bool, err error) {
	isDir, err := DirExists(path)
	if err != nil {
		return false, err
	}

	if isDir {
		return false, nil
	}

	if err := os.MkdirAll(path, perm&^UMask()); err != nil {
		return false, err
	}

	return true, nil
}
