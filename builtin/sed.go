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

import (
	"os"
	"regexp"

	"github.com/coreshell/coreshell/fsx"
)

// Sed replaces every match of pattern in the file at path with repl (in
// Go's regexp.ReplaceAll syntax, so "$1" refers to a capture group),
// rewriting the file in place via a staged copy, per the sed builtin.
func Sed(path, pattern, repl string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	replaced := re.ReplaceAll(content, []byte(repl))
	if string(replaced) == string(content) {
		return nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp := path + ".coreshell-sed-tmp"

	if err := os.WriteFile(tmp, replaced, fi.Mode().Perm()); err != nil {
		os.Remove(tmp)

		return err
	}

	return fsx.MoveEntry(path, tmp, fsx.OverwriteContent)
}
