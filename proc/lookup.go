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

package proc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/coreshell/coreshell/fsx"
	pathpkg "github.com/coreshell/coreshell/path"
)

// Path is the initial/recall/effect triple of §4.E / §5: Initial is the
// executable name or path exactly as the caller gave it; Recall is what the
// search (PATH lookup, or resolution against Overrides.Dir) settled on, the
// form a child process would see reflected in its own argv[0]; Effect is
// Recall with any symlinks followed, the path of the binary actually
// executed.
type Path struct {
	Initial string
	Recall  string
	Effect  string
}

// ResolvePath computes the Path triple for name, searching $PATH (or
// overrides.Env's PATH) when name is a bare executable name, or resolving
// it against overrides.Dir (or the process cwd) when it contains a
// directory separator but is not absolute.
func ResolvePath(name string, overrides *Overrides) (Path, error) {
	if name == "" {
		return Path{}, ErrNotFound
	}

	recall, err := recallPath(name, overrides)
	if err != nil {
		return Path{}, err
	}

	effect, err := fsx.FollowSymlink(recall)
	if err != nil {
		effect = recall
	}

	return Path{Initial: name, Recall: recall, Effect: effect}, nil
}

func recallPath(name string, overrides *Overrides) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || filepath.IsAbs(name) {
		if filepath.IsAbs(name) {
			return name, nil
		}

		base := overrides.dir()
		if base == "" {
			return filepath.Abs(name)
		}

		return filepath.Join(base, name), nil
	}

	return searchPath(name, pathEnvOf(overrides))
}

func pathEnvOf(overrides *Overrides) string {
	env := overrides.env()
	if env == nil {
		return os.Getenv("PATH")
	}

	for _, kv := range env {
		if len(kv) > 5 && strings.EqualFold(kv[:5], "PATH=") {
			return kv[5:]
		}
	}

	return ""
}

// searchPath looks for an executable named name in each directory of
// pathList, in order, per the executable-lookup operation of §4.E.
func searchPath(name, pathList string) (string, error) {
	sep := string(pathpkg.ListSeparator(pathpkg.Current))

	for _, dir := range strings.Split(pathList, sep) {
		if dir == "" {
			continue
		}

		candidate := filepath.Join(dir, name)

		if ok, err := isExecutable(candidate); err == nil && ok {
			return candidate, nil
		}
	}

	return "", ErrNotFound
}

func isExecutable(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	if fi.IsDir() {
		return false, nil
	}

	return isExecutableMode(fi), nil
}
