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

package builtin

import "github.com/coreshell/coreshell/fsx"

// Find searches root for entries matching pattern (a "**"/"***"-capable
// path pattern, see fsx.PathSearch), calling fn for each final match in the
// order fsx.PathSearch visits them, per the find builtin. Intermediate
// directory descents are not reported to fn.
func Find(root, pattern string, fn func(path string) error) error {
	return fsx.PathSearch(pattern, root, func(path string, _ fsx.EntryType, intermediate bool) (bool, error) {
		if intermediate {
			return true, nil
		}

		return true, fn(path)
	})
}
