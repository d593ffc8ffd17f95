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
	"io"
	"os"
)

// Cat writes each named path to w in order; "-" reads from stdin.
func Cat(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, p := range paths {
		if err := catOne(w, p); err != nil {
			return err
		}
	}

	return nil
}

func catOne(w io.Writer, p string) error {
	if p == "-" {
		_, err := io.Copy(w, os.Stdin)

		return err
	}

	f, err := os.Open(p)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = io.Copy(w, f)

	return err
}
