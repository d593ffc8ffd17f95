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

// Symlink creates newname as a symbolic link to target, per §4.D's
// mksymlink. target is stored verbatim, relative or absolute.
func Symlink(target, newname string) error {
	return os.Symlink(target, newname)
}

// Hardlink creates newname as a hard link to the existing file oldname, per
// §4.D's mkhardlink.
func Hardlink(oldname, newname string) error {
	return os.Link(oldname, newname)
}

// LinkKind reports which kind of link AnyLink actually created.
type LinkKind uint8

const (
	LinkSymbolic LinkKind = iota
	LinkHard
	LinkCopy
)

// AnyLink creates newname linked to oldname, per §4.D's mkanylink. It walks
// the documented fallback chain in order: attempt a symbolic link (target
// relative to newname's directory if relative is set, otherwise absolute);
// on an unsupported-operation error, fall through to a hard link; on a
// cross-device or unsupported-operation error from the hard-link attempt,
// fall through to a plain copy if copyFallback is set. It reports which kind of
// link (or copy) was actually created.
func AnyLink(oldname, newname string, copyFallback, relative bool) (kind LinkKind, err error) {
	target := oldname

	if relative {
		if rel, rerr := relTarget(oldname, newname); rerr == nil {
			target = rel
		}
	} else if abs, aerr := absTarget(oldname); aerr == nil {
		target = abs
	}

	symErr := os.Symlink(target, newname)
	if symErr == nil {
		return LinkSymbolic, nil
	}

	if !isUnsupportedLink(symErr) {
		return 0, symErr
	}

	hardErr := os.Link(oldname, newname)
	if hardErr == nil {
		return LinkHard, nil
	}

	if !copyFallback || (!isCrossDevice(hardErr) && !isUnsupportedLink(hardErr)) {
		return 0, hardErr
	}

	if err := CopyFile(newname, oldname, PreservePermissions|PreserveTimestamps); err != nil {
		return 0, err
	}

	return LinkCopy, nil
}
