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

package fdio_test

import (
	"io"
	"testing"
	"time"

	"github.com/coreshell/coreshell/fdio"
)

func TestPipeRoundTrip(t *testing.T) {
	p, err := fdio.OpenPipe()
	if err != nil {
		t.Fatalf("OpenPipe: want error to be nil, got %v", err)
	}

	want := []byte("hello from the write end\n")

	go func() {
		w := fdio.OpenFD(p.Write, fdio.Out)
		_, _ = w.Write(want)
		_ = w.Close()
	}()

	r := fdio.OpenFD(p.Read, fdio.In)
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: want error to be nil, got %v", err)
	}

	if string(got) != string(want) {
		t.Errorf("ReadAll: want %q, got %q", want, got)
	}
}

func TestSelectReadiness(t *testing.T) {
	p1, err := fdio.OpenPipe()
	if err != nil {
		t.Fatalf("OpenPipe p1: want error to be nil, got %v", err)
	}
	defer p1.Close()

	p2, err := fdio.OpenPipe()
	if err != nil {
		t.Fatalf("OpenPipe p2: want error to be nil, got %v", err)
	}
	defer p2.Close()

	if _, err := p2.Write.File().Write([]byte("x")); err != nil {
		t.Fatalf("Write p2: want error to be nil, got %v", err)
	}

	ready, err := fdio.Select([]fdio.FD{p1.Read, p2.Read}, nil, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Select: want error to be nil, got %v", err)
	}

	if len(ready.Read) != 2 {
		t.Fatalf("Select: want 2 read results, got %d", len(ready.Read))
	}

	if ready.Read[0] {
		t.Errorf("Select: p1 want not ready, got ready")
	}

	if !ready.Read[1] {
		t.Errorf("Select: p2 want ready, got not ready")
	}
}

func TestLineReader(t *testing.T) {
	p, err := fdio.OpenPipe()
	if err != nil {
		t.Fatalf("OpenPipe: want error to be nil, got %v", err)
	}

	go func() {
		w := fdio.OpenFD(p.Write, fdio.Out)
		_, _ = w.Write([]byte("first\nseco"))
		_ = w.Flush()

		time.Sleep(20 * time.Millisecond)

		_, _ = w.Write([]byte("nd\n"))
		_ = w.Close()
	}()

	r := fdio.OpenFD(p.Read, fdio.In)
	defer r.Close()

	lr := fdio.NewLineReader(r, '\n')

	var lines []string

	for len(lines) < 2 {
		ok, err := lr.Fill()
		if err != nil {
			t.Fatalf("Fill: want error to be nil, got %v", err)
		}

		if !ok {
			continue
		}

		line := lr.Line()
		if line != nil {
			lines = append(lines, string(line))

			continue
		}

		if lr.EOF() {
			break
		}
	}

	if len(lines) < 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("LineReader: want [first second...], got %v", lines)
	}
}
