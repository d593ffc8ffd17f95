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

//go:build unix

package fsx

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameRetry is a plain os.Rename on POSIX: rename(2) never needs retrying
// for a sharing violation, unlike Windows' MoveFileEx.
func renameRetry(dst, src string) error {
	return os.Rename(src, dst)
}

// prepareDestForRename is a no-op on POSIX: rename(2) already atomically
// replaces an empty destination directory itself, with no separate removal
// step needed.
func prepareDestForRename(dst string) {}

func isCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
