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

import "os"

// EntryType mirrors the filesystem entry kind, duplicated here (rather than
// imported from fsx) to keep fdio a leaf of fsx per the dependency order in
// §2: fsx depends on fdio, not the reverse.
type EntryType uint8

const (
	TypeUnknown EntryType = iota
	TypeRegular
	TypeDirectory
	TypeSymlink
	TypeOther
)

// Stat is the (type, size) pair of §3.2's entry_stat, for an open
// descriptor.
type Stat struct {
	Type EntryType
	Size int64
}

// FDStat returns the entry_stat for fd.
func FDStat(fd FD) (Stat, error) {
	if !fd.Valid() {
		return Stat{}, nil
	}

	fi, err := fd.File().Stat()
	if err != nil {
		return Stat{}, err
	}

	st := Stat{Size: fi.Size()}

	switch {
	case fi.Mode().IsRegular():
		st.Type = TypeRegular
	case fi.IsDir():
		st.Type = TypeDirectory
	case fi.Mode()&os.ModeSymlink != 0:
		st.Type = TypeSymlink
	default:
		st.Type = TypeOther
	}

	return st, nil
}
