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

package builtin_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/coreshell/coreshell/builtin"
)

func TestCat(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")

	if err := os.WriteFile(p, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	var buf bytes.Buffer

	if err := builtin.Cat(&buf, []string{p, p}); err != nil {
		t.Fatalf("Cat: want error to be nil, got %v", err)
	}

	if buf.String() != "hello\nhello\n" {
		t.Errorf("Cat: want %q, got %q", "hello\nhello\n", buf.String())
	}
}

func TestEcho(t *testing.T) {
	var buf bytes.Buffer

	if err := builtin.Echo(&buf, []string{"a", "b", "c"}, false); err != nil {
		t.Fatalf("Echo: want error to be nil, got %v", err)
	}

	if buf.String() != "a b c\n" {
		t.Errorf("Echo: want %q, got %q", "a b c\n", buf.String())
	}
}

func TestTouchAndTest(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f")

	if ok, _ := builtin.Test(p, builtin.TestExists); ok {
		t.Fatalf("Test before Touch: want false")
	}

	if err := builtin.Touch(p); err != nil {
		t.Fatalf("Touch: want error to be nil, got %v", err)
	}

	if ok, err := builtin.Test(p, builtin.TestIsFile); err != nil || !ok {
		t.Errorf("Test after Touch: want (true, nil), got (%v, %v)", ok, err)
	}
}

func TestCpMvRm(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	moved := filepath.Join(dir, "moved")

	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	if err := builtin.Cp(dst, src, false); err != nil {
		t.Fatalf("Cp: want error to be nil, got %v", err)
	}

	if err := builtin.Mv(moved, dst, false); err != nil {
		t.Fatalf("Mv: want error to be nil, got %v", err)
	}

	if ok, err := builtin.Rm(moved); err != nil || !ok {
		t.Errorf("Rm: want (true, nil), got (%v, %v)", ok, err)
	}

	if ok, err := builtin.Rm(moved); err != nil || ok {
		t.Errorf("Rm again: want (false, nil), got (%v, %v)", ok, err)
	}
}

func TestUmask(t *testing.T) {
	var buf bytes.Buffer

	mask := os.FileMode(0o22)

	if err := builtin.Umask(&buf, &mask); err != nil {
		t.Fatalf("Umask: want error to be nil, got %v", err)
	}

	if buf.String() != "0022\n" {
		t.Errorf("Umask: want %q, got %q", "0022\n", buf.String())
	}

	buf.Reset()

	if err := builtin.Umask(&buf, nil); err != nil {
		t.Fatalf("Umask without set: want error to be nil, got %v", err)
	}

	if buf.String() != "0022\n" {
		t.Errorf("Umask without set: want %q, got %q", "0022\n", buf.String())
	}
}

func TestTrueFalse(t *testing.T) {
	if err := builtin.True(); err != nil {
		t.Errorf("True: want nil, got %v", err)
	}

	if err := builtin.False(); err != builtin.ErrFalse {
		t.Errorf("False: want ErrFalse, got %v", err)
	}
}
