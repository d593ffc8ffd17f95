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

package fdio

// isWouldBlock never matches on Windows: non-blocking pipe reads are
// implemented by probing readiness with PeekNamedPipe in Select before
// ever issuing a Read, so Read/Write never observe a would-block error.
func isWouldBlock(err error) bool {
	return false
}
