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

package proc

import (
	"errors"
	"os"
	"syscall"
	"time"
)

const etxtbsyRetryWindow = 500 * time.Millisecond

// startProcessRetry retries os.StartProcess on ETXTBSY for up to ~0.5s.
// Linux (and other POSIX systems) can transiently refuse exec of a binary
// that another process still has open for writing (e.g. a build system
// still flushing the linker's output); libbutl's process.cxx retries the
// same window on the analogous fork+exec failure, and Go's os/exec
// inherits the identical race since it forks and execs just as directly.
func startProcessRetry(path string, argv []string, attr *os.ProcAttr) (*os.Process, error) {
	deadline := time.Now().Add(etxtbsyRetryWindow)

	for {
		p, err := os.StartProcess(path, argv, attr)
		if err == nil {
			return p, nil
		}

		if !errors.Is(err, syscall.ETXTBSY) || time.Now().After(deadline) {
			return nil, err
		}

		time.Sleep(5 * time.Millisecond)
	}
}
