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

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sys/windows"
)

// openNull backs the null device with a short-lived temporary file that
// deletes itself on close, per the distilled spec's note that this is an
// optimization over opening "nul" directly (nul's device I/O path is
// comparatively slow to open repeatedly in a tight spawn loop).
func openNull() (FD, error) {
	name := filepath.Join(os.TempDir(), "coreshell-null-"+uuid.NewString()+".tmp")

	path, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return FD{}, err
	}

	h, err := windows.CreateFile(
		path,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.CREATE_ALWAYS,
		windows.FILE_ATTRIBUTE_TEMPORARY|windows.FILE_FLAG_DELETE_ON_CLOSE,
		0,
	)
	if err != nil {
		return FD{}, err
	}

	return FromFile(os.NewFile(uintptr(h), name)), nil
}
