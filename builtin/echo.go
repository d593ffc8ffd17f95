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
	"strings"
)

// Echo writes args joined by a single space to w, per the echo builtin,
// followed by a newline unless noNewline is set.
func Echo(w io.Writer, args []string, noNewline bool) error {
	line := strings.Join(args, " ")
	if !noNewline {
		line += "\n"
	}

	_, err := io.WriteString(w, line)

	return err
}
