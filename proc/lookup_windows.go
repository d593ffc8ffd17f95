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

// isExecutableMode is always true on Windows: there is no execute
// permission bit, so any regular file named on PATH is considered a
// candidate (its extension against %PATHEXT% is checked by the caller via
// the exact name it was asked for, mirroring cmd.exe's own convention of
// trusting the caller's extension).
func isExecutableMode(fi os.FileInfo) bool {
	return true
}
