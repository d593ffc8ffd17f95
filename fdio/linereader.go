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
	"bytes"
	"io"
)

// LineReader is a non-blocking, line-oriented reader over a Stream, per
// §4.C: each call to Fill reads whatever is currently available on a
// non-blocking Stream and reports whether a delimiter (or EOF) was seen.
// Data that arrives between delimiters is retained across calls, so a
// caller can poll Fill after Select reports the underlying descriptor
// readable without losing a partial line.
type LineReader struct {
	s     *Stream
	delim byte
	buf   []byte
	eof   bool
}

// NewLineReader wraps s, delimiting lines on delim (typically '\n').
func NewLineReader(s *Stream, delim byte) *LineReader {
	return &LineReader{s: s, delim: delim}
}

// Fill reads what is currently available from the underlying stream and
// appends it to the internal buffer. It returns true once a delimiter (or
// EOF) has been seen and a line is ready to be taken with Line, false if it
// would block with no complete line yet. Once EOF has been observed, Fill
// keeps returning true with an empty Line after the final partial line (if
// any) has been drained.
func (lr *LineReader) Fill() (bool, error) {
	if bytes.IndexByte(lr.buf, lr.delim) >= 0 {
		return true, nil
	}

	if lr.eof {
		return true, nil
	}

	var tmp [4096]byte

	for {
		n, err := lr.s.Read(tmp[:])
		if n > 0 {
			lr.buf = append(lr.buf, tmp[:n]...)

			if bytes.IndexByte(lr.buf, lr.delim) >= 0 {
				return true, nil
			}
		}

		if err != nil {
			if err == io.EOF {
				lr.eof = true

				return true, nil
			}

			return false, err
		}

		if n == 0 {
			return false, nil
		}
	}
}

// Line takes the next complete line (without its delimiter) out of the
// accumulator. It must only be called after Fill returns true. A trailing
// partial line at EOF, with no delimiter, is still returned once; after
// that Line returns nil.
func (lr *LineReader) Line() []byte {
	idx := bytes.IndexByte(lr.buf, lr.delim)
	if idx < 0 {
		if len(lr.buf) == 0 {
			return nil
		}

		line := lr.buf
		lr.buf = nil

		return line
	}

	line := lr.buf[:idx]
	lr.buf = lr.buf[idx+1:]

	return line
}

// Pending reports whether a complete or partial line remains buffered.
func (lr *LineReader) Pending() bool { return len(lr.buf) > 0 }

// EOF reports whether the underlying stream has reached end-of-stream.
func (lr *LineReader) EOF() bool { return lr.eof }
