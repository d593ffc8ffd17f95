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

package fsx

import "os"

// clearReadOnlyAndRetry clears FILE_ATTRIBUTE_READONLY (os.ModePerm's
// write bits, as os.Chmod maps them on Windows) and retries the remove
// once. Windows refuses DeleteFile on a read-only attribute even when the
// caller otherwise has full access.
func clearReadOnlyAndRetry(path string) (bool, error) {
	fi, statErr := os.Lstat(path)
	if statErr != nil {
		return false, nil
	}

	if fi.Mode().Perm()&0o200 != 0 {
		return false, nil
	}

	if err := os.Chmod(path, fi.Mode()|0o200); err != nil {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		return false, err
	}

	return true, nil
}
