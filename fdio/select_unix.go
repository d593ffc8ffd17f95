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

import (
	"time"

	"golang.org/x/sys/unix"
)

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}

// platformSelect implements Select atop unix.Select, the pselect(2)/select(2)
// wrapper exposed by x/sys/unix.
func platformSelect(read, write []FD, timeout time.Duration) (Ready, error) {
	var rset, wset unix.FdSet

	nfd := 0

	for _, fd := range read {
		if fd.Valid() {
			n := int(fd.Fd())
			fdSet(&rset, n)

			if n >= nfd {
				nfd = n + 1
			}
		}
	}

	for _, fd := range write {
		if fd.Valid() {
			n := int(fd.Fd())
			fdSet(&wset, n)

			if n >= nfd {
				nfd = n + 1
			}
		}
	}

	var tv *unix.Timeval

	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}

	for {
		_, err := unix.Select(nfd, &rset, &wset, nil, tv)
		if err == unix.EINTR {
			continue
		}

		if err != nil {
			return Ready{}, err
		}

		break
	}

	ready := Ready{Read: make([]bool, len(read)), Write: make([]bool, len(write))}

	for i, fd := range read {
		ready.Read[i] = fd.Valid() && fdIsSet(&rset, int(fd.Fd()))
	}

	for i, fd := range write {
		ready.Write[i] = fd.Valid() && fdIsSet(&wset, int(fd.Fd()))
	}

	return ready, nil
}
