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

// Package fsx implements filesystem entry operations over the real OS
// filesystem: existence probes, directory creation/removal, symlink and
// hardlink creation and following, copy and move, directory traversal, and
// path-pattern search, as specified for component D.
package fsx

import (
	"errors"
	"io/fs"
)

// ErrNotEmpty is returned by TryRmdir when the directory is not empty.
var ErrNotEmpty = errors.New("fsx: directory not empty")

// ErrTooManySymlinks is returned by FollowSymlink/TryFollowSymlink once the
// 50-hop indirection cap of §4.D is exceeded.
var ErrTooManySymlinks = errors.New("fsx: too many levels of symbolic links")

// ErrNotSymlink is returned by ReadSymlink when the entry is not a symbolic
// link.
var ErrNotSymlink = errors.New("fsx: not a symbolic link")

// maxSymlinkDepth bounds FollowSymlink's indirection chase, per §4.D.
const maxSymlinkDepth = 50

// EntryType classifies a filesystem entry, mirroring fdio.EntryType so that
// fsx callers never need to import fdio just to read a directory.
type EntryType uint8

const (
	TypeUnknown EntryType = iota
	TypeRegular
	TypeDirectory
	TypeSymlink
	TypeOther
)

func entryType(mode fs.FileMode) EntryType {
	switch {
	case mode.IsRegular():
		return TypeRegular
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	default:
		return TypeOther
	}
}

// PathEntry is the (type, size) pair §3.2 of the distilled spec reports for
// a named path, analogous to fdio.Stat but resolved by path rather than by
// open descriptor.
type PathEntry struct {
	Type EntryType
	Size int64
}
