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

package fdio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"runtime"
)

// ErrUnsupportedOnNonBlocking is returned by operations whose interface
// cannot report "would-block" (Seek, Truncate, Sync) when
// called on a non-blocking Stream.
var ErrUnsupportedOnNonBlocking = errors.New("fdio: unsupported on a non-blocking stream")

const defaultBufSize = 8192

// Stream is buffered sequential access to an underlying OS file descriptor
// with independently-settable direction, translation, blocking and
// close-on-exec/skip-on-close modes, per component C.
type Stream struct {
	fd          FD
	dir         Direction
	translation Translation
	blocking    Blocking
	closeOnExec bool
	skipOnClose bool

	r      *bufio.Reader
	w      *bufio.Writer
	offset int64
}

// Open opens path with the given mode flags.
func Open(path string, flags OpenFlag, perm os.FileMode) (*Stream, error) {
	osFlags := 0

	switch {
	case flags&In != 0 && flags&Out != 0:
		osFlags |= os.O_RDWR
	case flags&Out != 0:
		osFlags |= os.O_WRONLY
	default:
		osFlags |= os.O_RDONLY
	}

	if flags&Append != 0 {
		osFlags |= os.O_APPEND
	}

	if flags&Truncate != 0 {
		osFlags |= os.O_TRUNC
	}

	if flags&Create != 0 {
		osFlags |= os.O_CREATE
	}

	if flags&Exclusive != 0 {
		osFlags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, osFlags, perm)
	if err != nil {
		return nil, err
	}

	if flags&AtEnd != 0 {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			f.Close()

			return nil, err
		}
	}

	s := newStream(FromFile(f), flags)

	return s, nil
}

// OpenFD wraps an already-open owning FD (takes ownership).
func OpenFD(fd FD, flags OpenFlag) *Stream {
	return newStream(fd, flags)
}

func newStream(fd FD, flags OpenFlag) *Stream {
	s := &Stream{fd: fd, closeOnExec: true}

	if flags&Out != 0 {
		s.dir = DirOut
	} else {
		s.dir = DirIn
	}

	if flags&Binary == 0 {
		s.translation = TranslationText
	}

	if s.dir == DirIn {
		s.r = bufio.NewReaderSize(fdReader{s}, defaultBufSize)
	} else {
		s.w = bufio.NewWriterSize(fdWriter{s}, defaultBufSize)
	}

	return s
}

type fdReader struct{ s *Stream }

func (r fdReader) Read(p []byte) (int, error) { return r.s.fd.File().Read(p) }

type fdWriter struct{ s *Stream }

func (w fdWriter) Write(p []byte) (int, error) { return w.s.fd.File().Write(p) }

// FD returns the underlying owning descriptor.
func (s *Stream) FD() FD { return s.fd }

// SetBlocking changes blocking mode; it is the caller's responsibility to
// call this before concurrent reads/writes are in flight.
func (s *Stream) SetBlocking(b Blocking) error {
	if b == s.blocking {
		return nil
	}

	if err := setNonblock(s.fd, b == NonBlocking); err != nil {
		return err
	}

	s.blocking = b

	return nil
}

// SetTranslation sets binary/text translation; ignored on POSIX.
func (s *Stream) SetTranslation(t Translation) { s.translation = t }

// SetCloseOnExec sets or clears close-on-exec on the underlying descriptor.
func (s *Stream) SetCloseOnExec(enabled bool) error {
	if err := setCloseOnExec(s.fd, enabled); err != nil {
		return err
	}

	s.closeOnExec = enabled

	return nil
}

// SetSkipOnClose marks an input stream to drain remaining input on Close,
// so a child writing to the other end of a pipe never blocks on pipe-full
// because the parent stopped reading.
func (s *Stream) SetSkipOnClose(enabled bool) { s.skipOnClose = enabled }

// Read implements io.Reader. On a non-blocking stream it returns (0, nil)
// rather than blocking when no data is currently available.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.offset += int64(n)

	if s.blocking == NonBlocking && isWouldBlock(err) {
		return n, nil
	}

	return n, err
}

// Write implements io.Writer, with the same would-block contract as Read.
func (s *Stream) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.offset += int64(n)

	if s.blocking == NonBlocking && isWouldBlock(err) {
		return n, nil
	}

	return n, err
}

// Flush flushes any buffered output.
func (s *Stream) Flush() error {
	if s.w == nil {
		return nil
	}

	return s.w.Flush()
}

// Sync commits the underlying descriptor's contents to stable storage.
func (s *Stream) Sync() error {
	if s.blocking == NonBlocking {
		return ErrUnsupportedOnNonBlocking
	}

	if err := s.Flush(); err != nil {
		return err
	}

	return s.fd.File().Sync()
}

// Truncate changes the size of the underlying file.
func (s *Stream) Truncate(size int64) error {
	if s.blocking == NonBlocking {
		return ErrUnsupportedOnNonBlocking
	}

	return s.fd.File().Truncate(size)
}

// Seek implements the O(offset) "seek to beginning, discard up to target"
// contract of §4.C for input streams: it does not require the underlying
// fd to support SEEK_SET beyond what a pipe or regular file offers.
//
// In Windows text-translation mode with whence==io.SeekCurrent, the offset
// is adjusted by subtracting the count of '\n' bytes currently buffered, an
// approximation of CRLF translation documented as imprecise for input
// without a preceding '\r'.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.blocking == NonBlocking {
		return 0, ErrUnsupportedOnNonBlocking
	}

	if s.dir != DirIn {
		return s.fd.File().Seek(offset, whence)
	}

	var target int64

	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.offset + offset

		if runtime.GOOS == "windows" && s.translation == TranslationText {
			target -= int64(countBufferedNewlines(s.r))
		}
	default:
		return 0, errors.New("fdio: SeekEnd unsupported on a Stream")
	}

	if target < s.offset {
		if _, err := s.fd.File().Seek(0, io.SeekStart); err != nil {
			return 0, err
		}

		s.r.Reset(fdReader{s})
		s.offset = 0
	}

	if target < s.offset {
		return 0, errors.New("fdio: negative offset")
	}

	n := target - s.offset
	if n > 0 {
		if _, err := io.CopyN(io.Discard, s, n); err != nil {
			return s.offset, err
		}
	}

	return s.offset, nil
}

func countBufferedNewlines(r *bufio.Reader) int {
	buffered, _ := r.Peek(r.Buffered())
	count := 0

	for _, b := range buffered {
		if b == '\n' {
			count++
		}
	}

	return count
}

// Close flushes (for an output stream), drains remaining input if
// SkipOnClose was set, and closes the underlying descriptor.
func (s *Stream) Close() error {
	if s.dir == DirOut && s.w != nil {
		if err := s.w.Flush(); err != nil {
			s.fd.Close()

			return err
		}
	}

	if s.dir == DirIn && s.skipOnClose {
		_, _ = io.Copy(io.Discard, s.r)
	}

	return s.fd.Close()
}
