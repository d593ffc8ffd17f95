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

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// errStopSearch unwinds searchComponents back to PathSearch after a final
// match asks to stop the whole search; PathSearch converts it back to a
// nil error rather than surfacing it to the caller.
var errStopSearch = errors.New("fsx: stop path search")

// PathSearch walks start for entries matching pattern, calling fn for each
// match, per §4.D's path_search. fn is called for a final match
// (intermediate=false, an entry named by the complete pattern) and also
// for every intermediate directory descent matched by a non-final pattern
// component (intermediate=true) — so a caller can prune a subtree by
// returning cont=false from an intermediate match, or stop the whole
// search by returning cont=false from a final match.
//
// Besides ordinary shell wildcards (matched per-component with
// path/filepath.Match), a component containing "**" is matched like "*" in
// every subdirectory, recursively; a component containing "***" behaves
// like "**" but additionally reports each directory it is matched in (the
// start directory, and each subdirectory the recursion enters) as a match
// of its own, whether or not that directory's name fits the wildcard. A
// trailing "/" on pattern is dropped, so "f***/" matches files as well as
// directories.
func PathSearch(pattern, start string, fn func(path string, typ EntryType, intermediate bool) (cont bool, err error)) error {
	if start == "" {
		start = "."
	}

	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")

	var comps []string
	if pattern != "" {
		comps = strings.Split(pattern, "/")
	}

	err := searchComponents(start, comps, fn)
	if errors.Is(err, errStopSearch) {
		return nil
	}

	return err
}

func searchComponents(base string, comps []string, fn func(string, EntryType, bool) (bool, error)) error {
	if len(comps) == 0 {
		return nil
	}

	comp := comps[0]
	rest := comps[1:]

	recursive, selfMatching, globPat := parseWildcard(comp)

	if selfMatching {
		if fi, err := os.Stat(base); err == nil && fi.IsDir() {
			if err := reportMatch(base, entryType(fi.Mode()), len(rest) > 0, rest, fn); err != nil {
				return err
			}
		} else if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	for _, de := range entries {
		name := de.Name()
		p := filepath.Join(base, name)

		matched, matchErr := filepath.Match(globPat, name)
		if matchErr != nil {
			return matchErr
		}

		isDir := de.IsDir()

		if matched && (len(rest) == 0 || isDir) {
			info, err := de.Info()
			if err != nil {
				return err
			}

			if err := reportMatch(p, entryType(info.Mode()), len(rest) > 0, rest, fn); err != nil {
				return err
			}
		}

		if recursive && isDir {
			if err := searchComponents(p, comps, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

// reportMatch invokes fn for one matched entry. An intermediate match (more
// pattern components remain and the entry is a directory) descends into
// rest unless fn returns cont=false, which prunes just that subtree; a
// final match stops the whole search when fn returns cont=false.
func reportMatch(p string, typ EntryType, intermediate bool, rest []string, fn func(string, EntryType, bool) (bool, error)) error {
	cont, err := fn(p, typ, intermediate)
	if err != nil {
		return err
	}

	if !cont {
		if intermediate {
			return nil
		}

		return errStopSearch
	}

	if intermediate {
		return searchComponents(p, rest, fn)
	}

	return nil
}

// parseWildcard reports whether comp uses the "**"/"***" recursive markers
// and returns the plain filepath.Match pattern with them collapsed to a
// single "*".
func parseWildcard(comp string) (recursive, selfMatching bool, globPattern string) {
	switch {
	case strings.Contains(comp, "***"):
		return true, true, strings.ReplaceAll(comp, "***", "*")
	case strings.Contains(comp, "**"):
		return true, false, strings.ReplaceAll(comp, "**", "*")
	default:
		return false, false, comp
	}
}
