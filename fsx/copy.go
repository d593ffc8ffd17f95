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
	"errors"
	"io"
	"os"
	"sync"
)

var copyPool = newCopyPool()

func newCopyPool() *sync.Pool {
	const bufSize = 32 * 1024

	return &sync.Pool{New: func() interface{} {
		buf := make([]byte, bufSize)

		return &buf
	}}
}

func copyBufPool(dst io.Writer, src io.Reader) (int64, error) {
	buf := copyPool.Get().(*[]byte)
	defer copyPool.Put(buf)

	return io.CopyBuffer(dst, src, *buf)
}

// CopyFlag controls CopyFile's behavior, per §4.D's copy_file options.
type CopyFlag uint8

const (
	// Overwrite allows replacing an existing destination. Without it,
	// CopyFile fails if dst already exists.
	Overwrite CopyFlag = 1 << iota
	// PreservePermissions carries the source file's mode bits to dst.
	PreservePermissions
	// PreserveTimestamps sets both dst's modification and access times to
	// the source file's modification time; the source's access time is not
	// carried over.
	PreserveTimestamps
)

// CopyFile copies the regular file at src to dst, per §4.D's copy_file.
// Without Overwrite, CopyFile fails if dst exists at all, including as a
// dangling symlink. With Overwrite, an existing destination is truncated
// and rewritten in place (O_TRUNC, never removed or renamed over), so any
// hard link to dst's inode sees the overwrite instead of the old content.
func CopyFile(dst, src string, flags CopyFlag) (err error) {
	srcFi, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !srcFi.Mode().IsRegular() {
		return &os.PathError{Op: "copyfile", Path: src, Err: errors.New("not a regular file")}
	}

	openFlags := os.O_WRONLY | os.O_CREATE
	if flags&Overwrite != 0 {
		openFlags |= os.O_TRUNC
	} else {
		if _, exists, err := Entry(dst); err != nil {
			return err
		} else if exists {
			return &os.PathError{Op: "copyfile", Path: dst, Err: os.ErrExist}
		}

		openFlags |= os.O_EXCL
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}

	defer in.Close()

	out, err := os.OpenFile(dst, openFlags, srcFi.Mode().Perm())
	if err != nil {
		return err
	}

	defer out.Close()

	if _, err = copyBufPool(out, in); err != nil {
		return err
	}

	if err = out.Sync(); err != nil {
		return err
	}

	if err = out.Close(); err != nil {
		return err
	}

	if flags&PreservePermissions != 0 {
		if err = os.Chmod(dst, srcFi.Mode().Perm()); err != nil {
			return err
		}
	}

	if flags&PreserveTimestamps != 0 {
		mtime := srcFi.ModTime()
		if err = os.Chtimes(dst, mtime, mtime); err != nil {
			return err
		}
	}

	return nil
}
