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

// OpenFlag is a bitmask of mode flags for Open, per §4.C.
type OpenFlag uint16

const (
	In OpenFlag = 1 << iota
	Out
	Append
	Truncate
	Create
	Exclusive
	AtEnd
	Binary
)

// Direction is the stream's read/write direction.
type Direction uint8

const (
	DirIn Direction = iota
	DirOut
)

// Translation controls CRLF<->LF translation; meaningful only on Windows.
type Translation uint8

const (
	TranslationBinary Translation = iota
	TranslationText
)

// Blocking selects blocking vs. non-blocking semantics for a Stream.
type Blocking uint8

const (
	IsBlocking Blocking = iota
	NonBlocking
)
