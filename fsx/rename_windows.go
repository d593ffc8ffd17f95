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

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

const (
	renameRetries = 10
	renameDelay   = 20 * time.Millisecond
)

// renameRetry retries os.Rename (MoveFileEx under the hood) a bounded
// number of times on ERROR_SHARING_VIOLATION/ERROR_ACCESS_DENIED, since an
// antivirus scanner or an indexer transiently holding the source or
// destination handle open is common enough on Windows to be worth a retry
// loop rather than an immediate failure.
func renameRetry(dst, src string) error {
	var err error

	for attempt := 0; attempt < renameRetries; attempt++ {
		err = os.Rename(src, dst)
		if err == nil {
			return nil
		}

		if !errors.Is(err, windows.ERROR_SHARING_VIOLATION) && !errors.Is(err, windows.ERROR_ACCESS_DENIED) {
			return err
		}

		time.Sleep(renameDelay)
	}

	return err
}

func isCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}

// prepareDestForRename removes dst first when it is an empty directory or
// any symlink/junction, per §4.D step 5: MoveFileEx cannot replace a
// directory the way it can replace a file, so an empty one (or a
// symlink/junction that may stand in for one) has to be cleared before the
// rename retry loop below has any chance of succeeding. Best-effort: if dst
// doesn't exist, isn't a directory, or isn't actually empty, the removal
// fails silently and the retry loop runs (and fails) as it would have
// without this step.
func prepareDestForRename(dst string) {
	fi, err := os.Lstat(dst)
	if err != nil {
		return
	}

	if fi.IsDir() || fi.Mode()&os.ModeSymlink != 0 {
		_ = os.Remove(dst)
	}
}
