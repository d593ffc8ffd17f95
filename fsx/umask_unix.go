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

//go:build unix

package fsx

import (
	"os"
	"sync"
	"syscall"
)

// umLock serializes the read-modify-write around syscall.Umask, which
// has no separate getter: the only way to read the mask is to set it
// and look at what comes back.
var umLock sync.Mutex

// UMask returns the process's current file mode creation mask.
func UMask() os.FileMode {
	umLock.Lock()
	defer umLock.Unlock()

	m := syscall.Umask(0)
	syscall.Umask(m)

	return os.FileMode(m)
}

// SetUMask sets the process's file mode creation mask to mask and
// returns the previous value.
func SetUMask(mask os.FileMode) os.FileMode {
	umLock.Lock()
	defer umLock.Unlock()

	m := syscall.Umask(int(mask & os.ModePerm))

	return os.FileMode(m)
}
