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

package fsx_test

import (
	"os"
	"testing"

	"github.com/coreshell/coreshell/fsx"
)

func TestUMaskGetSet(t *testing.T) {
	saved := fsx.SetUMask(0o77)
	defer fsx.SetUMask(saved)

	if got := fsx.UMask(); got != 0o77 {
		t.Errorf("UMask: want %o, got %o", 0o77, got)
	}

	prev := fsx.SetUMask(0o22)
	if prev != 0o77 {
		t.Errorf("SetUMask: want previous %o, got %o", 0o77, prev)
	}

	if got := fsx.UMask(); got != 0o22 {
		t.Errorf("UMask after SetUMask: want %o, got %o", 0o22, got)
	}
}

func TestUMaskAppliesToMkdir(t *testing.T) {
	saved := fsx.SetUMask(0o77)
	defer fsx.SetUMask(saved)

	dir := t.TempDir() + "/masked"

	if _, err := fsx.TryMkdir(dir, 0o777); err != nil {
		t.Fatalf("TryMkdir: want error to be nil, got %v", err)
	}

	fi, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat: want error to be nil, got %v", err)
	}

	if fi.Mode().Perm()&0o077 != 0 {
		t.Errorf("TryMkdir with umask 077: want low bits cleared, got %o", fi.Mode().Perm())
	}
}
