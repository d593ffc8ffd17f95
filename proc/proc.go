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

// Package proc implements process spawning and lifecycle control: executable
// lookup, the initial/recall/effect path triple, redirected standard
// streams, and wait/kill/signal primitives, as specified for component E.
package proc

import "errors"

// ErrNotFound is returned by ResolvePath when name is empty or cannot be
// located on PATH, mirroring exec.ErrNotFound. A name containing a
// separator is not checked for existence.
var ErrNotFound = errors.New("proc: executable not found")
