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

package builtin

import (
	"errors"

	"github.com/coreshell/coreshell/fsx"
)

// TestOp selects which predicate the test builtin evaluates.
type TestOp uint8

const (
	TestExists TestOp = iota
	TestIsFile
	TestIsDir
	TestIsSymlink
)

// ErrUnknownTestOp is returned by Test for an unrecognized TestOp.
var ErrUnknownTestOp = errors.New("builtin: unknown test operator")

// Test evaluates op against path, per the test builtin (-e/-f/-d/-L).
func Test(path string, op TestOp) (bool, error) {
	switch op {
	case TestExists:
		return fsx.EntryExists(path)
	case TestIsFile:
		return fsx.FileExists(path)
	case TestIsDir:
		return fsx.DirExists(path)
	case TestIsSymlink:
		entry, ok, err := fsx.Entry(path)
		if err != nil || !ok {
			return false, err
		}

		return entry.Type == fsx.TypeSymlink, nil
	default:
		return false, ErrUnknownTestOp
	}
}
