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

package proc

import "os"

// decodeExit never reports Signaled on Windows: NTSTATUS-style termination
// codes (e.g. a process killed by TerminateProcess) surface as an ordinary,
// if unusual, exit code rather than through a signal-delivery model.
func decodeExit(state *os.ProcessState) ExitStatus {
	return ExitStatus{Code: state.ExitCode()}
}

// term has no graceful-termination primitive to fall back to on Windows
// (no SIGTERM equivalent reaches an arbitrary child), so it forcibly
// terminates, same as Kill.
func term(p *os.Process) error {
	return p.Kill()
}
