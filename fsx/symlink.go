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

// ReadSymlink returns the stored target of the symlink at path, exactly as
// stored (not cleaned or rebased), per §4.D's readsymlink.
func ReadSymlink(path string) (string, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return "", err
	}

	if fi.Mode()&os.ModeSymlink == 0 {
		return "", ErrNotSymlink
	}

	return os.Readlink(path)
}

// FollowSymlink resolves path through up to 50 levels of symbolic link
// indirection, rebasing each relative target against its link's directory
// and cleaning the result, per §4.D's followsymlink. If path does not
// itself name a symlink, it is returned unchanged. A dangling link (any
// hop whose target does not exist) is an error; use TryFollowSymlink to
// observe non-existence instead of raising.
func FollowSymlink(path string) (string, error) {
	resolved, exists, err := TryFollowSymlink(path)
	if err != nil {
		return "", err
	}

	if !exists {
		return "", &os.PathError{Op: "followsymlink", Path: resolved, Err: os.ErrNotExist}
	}

	return resolved, nil
}

// TryFollowSymlink is FollowSymlink reporting existence instead of raising
// on a dangling link: if the final hop's target does not exist, it returns
// the last attempted path with exists=false and a nil error. exists=true
// covers both "path was not a symlink" and "every hop resolved to a real
// entry".
func TryFollowSymlink(path string) (resolved string, exists bool, err error) {
	cur := path
	followed := false

	for depth := 0; ; depth++ {
		fi, lerr := os.Lstat(cur)
		if lerr != nil {
			if followed && os.IsNotExist(lerr) {
				return cur, false, nil
			}

			return "", false, lerr
		}

		if fi.Mode()&os.ModeSymlink == 0 {
			return cur, true, nil
		}

		if depth >= maxSymlinkDepth {
			return "", false, ErrTooManySymlinks
		}

		target, rerr := os.Readlink(cur)
		if rerr != nil {
			return "", false, rerr
		}

		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(cur), target)
		}

		cur = filepath.Clean(target)
		followed = true
	}
}
