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
	"fmt"
	"io"
	"os"

	"github.com/coreshell/coreshell/fsx"
)

// Umask prints the process's current file mode creation mask to w, per
// the umask builtin. If set is non-nil, the mask is changed to *set
// first and the printed value reflects the new mask.
func Umask(w io.Writer, set *os.FileMode) error {
	if set != nil {
		fsx.SetUMask(*set)
	}

	_, err := fmt.Fprintf(w, "%04o\n", fsx.UMask())

	return err
}
