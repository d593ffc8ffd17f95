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

	"github.com/coreshell/coreshell/tstamp"
)

// defaultDateFormat matches strftime's default, as date(1) does when no
// +FORMAT is given.
const defaultDateFormat = "%a %b %e %T %Z %Y"

// Date writes tstamp.Now() (or, if provided, ts) formatted per format (an
// empty format uses the strftime default) to w, per the date builtin.
func Date(w io.Writer, format string, ts *tstamp.Instant) error {
	now := tstamp.Now()
	if ts != nil {
		now = *ts
	}

	if format == "" {
		format = defaultDateFormat
	}

	s, err := tstamp.ToString(now, format, true, true)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s+"\n")

	return err
}
