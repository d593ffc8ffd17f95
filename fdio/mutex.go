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

package fdio

import "sync"

// spawnMutex is a thin wrapper around sync.Mutex so SpawnMu's zero value is
// ready to use without an init function, matching avfs's UMaskType pattern
// of a lazily-usable zero-value global (umask.go).
type spawnMutex struct {
	mu sync.Mutex
}

// Lock acquires the process-spawn mutex.
func (m *spawnMutex) Lock() { m.mu.Lock() }

// Unlock releases the process-spawn mutex.
func (m *spawnMutex) Unlock() { m.mu.Unlock() }
