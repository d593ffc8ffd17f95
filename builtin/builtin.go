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

// Package builtin implements the shell-style builtins of component F: cat,
// cp, mv, rm, rmdir, mkdir, ln, find, sed, sleep, touch, test, echo, date,
// true and false. Each is a thin Go function over the public contracts of
// path, tstamp, fdio, fsx and proc; cmd/coreshell wires them to a CLI.
package builtin

import "errors"

// ErrFalse is returned by False, mirroring the shell "false" builtin's
// non-zero, no-message exit.
var ErrFalse = errors.New("builtin: false")

// True is the "true" builtin: it always succeeds.
func True() error { return nil }

// False is the "false" builtin: it always fails.
func False() error { return ErrFalse }
