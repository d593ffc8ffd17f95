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

package fdio

// msysPtyHeuristic never applies on POSIX; MSYS pty pipes are a Windows
// concept.
func msysPtyHeuristic(fd FD) bool { return false }

// enableVTProcessing is a no-op on POSIX terminals, which already support
// ANSI escapes natively.
func enableVTProcessing(fd FD) {}
