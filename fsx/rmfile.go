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

// TryRmFile removes the file (or symlink) at path, per §4.D's try_rmfile.
// It reports ok=true if path was removed, ok=false (nil error) if it did
// not exist. On Windows, a read-only attribute blocking the delete is
// cleared and the remove retried once, matching the read-only/retry
// behavior rmfile_windows.go documents for libbutl-style tooling.
func TryRmFile(path string) (ok bool, err error) {
	_, present, err := Entry(path)
	if err != nil {
		return false, err
	}

	if !present {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		if cleared, cerr := clearReadOnlyAndRetry(path); cleared {
			return true, nil
		} else if cerr != nil {
			return false, cerr
		}

		return false, err
	}

	return true, nil
}
