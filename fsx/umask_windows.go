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

//go:build windows

package fsx

import (
	"os"
	"sync/atomic"
)

// windowsUMask is a fiction: Windows has no kernel-level umask, so the
// mask is just a process-wide value that Mkdir-family callers apply
// themselves. It defaults to 0o111, matching the execute bits NTFS
// ACLs never grant through CreateFile anyway.
var windowsUMask uint32 = 0o111

// UMask returns the process's current file mode creation mask.
func UMask() os.FileMode {
	return os.FileMode(atomic.LoadUint32(&windowsUMask))
}

// SetUMask sets the process's file mode creation mask to mask and
// returns the previous value.
func SetUMask(mask os.FileMode) os.FileMode {
	prev := atomic.SwapUint32(&windowsUMask, uint32(mask&os.ModePerm))

	return os.FileMode(prev)
}
