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

package fsx

import "path/filepath"

// absTarget resolves oldname to an absolute path, so a symlink survives
// newname and oldname living in different directories.
func absTarget(oldname string) (string, error) {
	return filepath.Abs(oldname)
}

// relTarget resolves oldname relative to newname's directory, the form a
// symlink target takes when it and its link are expected to move together.
func relTarget(oldname, newname string) (string, error) {
	return filepath.Rel(filepath.Dir(newname), oldname)
}
