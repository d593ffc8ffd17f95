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

package fsx_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/coreshell/coreshell/fsx"
)

func TestTryMkdirTryRmdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "d")

	ok, err := fsx.TryMkdir(dir, 0o755)
	if err != nil || !ok {
		t.Fatalf("TryMkdir: want (true, nil), got (%v, %v)", ok, err)
	}

	ok, err = fsx.TryMkdir(dir, 0o755)
	if err != nil || ok {
		t.Fatalf("TryMkdir existing: want (false, nil), got (%v, %v)", ok, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	if _, err := fsx.TryRmdir(dir); err != fsx.ErrNotEmpty {
		t.Fatalf("TryRmdir non-empty: want ErrNotEmpty, got %v", err)
	}

	if err := os.Remove(filepath.Join(dir, "f")); err != nil {
		t.Fatalf("Remove: want error to be nil, got %v", err)
	}

	ok, err = fsx.TryRmdir(dir)
	if err != nil || !ok {
		t.Fatalf("TryRmdir: want (true, nil), got (%v, %v)", ok, err)
	}
}

func TestCopyFileAndMoveEntry(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "dst.txt")

	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	if err := fsx.CopyFile(dst, src, fsx.PreservePermissions); err != nil {
		t.Fatalf("CopyFile: want error to be nil, got %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil || string(got) != "payload" {
		t.Fatalf("ReadFile dst: want (payload, nil), got (%q, %v)", got, err)
	}

	moved := filepath.Join(root, "moved.txt")

	if err := fsx.MoveEntry(moved, dst, 0); err != nil {
		t.Fatalf("MoveEntry: want error to be nil, got %v", err)
	}

	if exists, _ := fsx.EntryExists(dst); exists {
		t.Errorf("MoveEntry: source %q still exists after move", dst)
	}

	got, err = os.ReadFile(moved)
	if err != nil || string(got) != "payload" {
		t.Fatalf("ReadFile moved: want (payload, nil), got (%q, %v)", got, err)
	}

	if err := fsx.MoveEntry(moved, src, 0); err == nil {
		t.Errorf("MoveEntry onto existing dst without OverwriteContent: want error, got nil")
	}

	if err := os.WriteFile(src, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	if err := fsx.MoveEntry(moved, src, fsx.OverwriteContent); err != nil {
		t.Fatalf("MoveEntry with OverwriteContent: want error to be nil, got %v", err)
	}

	got, err = os.ReadFile(moved)
	if err != nil || string(got) != "second" {
		t.Fatalf("ReadFile moved after overwrite: want (second, nil), got (%q, %v)", got, err)
	}
}

func TestPathSearchRecursive(t *testing.T) {
	root := t.TempDir()

	paths := []string{
		"a/bar-1.txt",
		"a/b/bar-2.txt",
		"a/b/c/bar-3.txt",
		"a/b/c/other.txt",
	}

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))

		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: want error to be nil, got %v", err)
		}

		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: want error to be nil, got %v", err)
		}
	}

	var matches []string

	err := fsx.PathSearch("a/bar-**.txt", root, func(path string, typ fsx.EntryType, intermediate bool) (bool, error) {
		if intermediate {
			return true, nil
		}

		rel, _ := filepath.Rel(root, path)
		matches = append(matches, filepath.ToSlash(rel))

		return true, nil
	})
	if err != nil {
		t.Fatalf("PathSearch: want error to be nil, got %v", err)
	}

	sort.Strings(matches)

	want := []string{"a/b/bar-2.txt", "a/b/c/bar-3.txt", "a/bar-1.txt"}

	if len(matches) != len(want) {
		t.Fatalf("PathSearch: want %v, got %v", want, matches)
	}

	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("PathSearch[%d]: want %q, got %q", i, want[i], matches[i])
		}
	}
}

func TestFollowSymlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target.txt")

	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	link := filepath.Join(root, "link")
	if err := fsx.Symlink(target, link); err != nil {
		t.Fatalf("Symlink: want error to be nil, got %v", err)
	}

	resolved, err := fsx.FollowSymlink(link)
	if err != nil {
		t.Fatalf("FollowSymlink: want error to be nil, got %v", err)
	}

	if resolved != target {
		t.Errorf("FollowSymlink: want %q, got %q", target, resolved)
	}

	dangling := filepath.Join(root, "dangling")
	if err := fsx.Symlink(filepath.Join(root, "nonexistent"), dangling); err != nil {
		t.Fatalf("Symlink: want error to be nil, got %v", err)
	}

	if _, err := fsx.FollowSymlink(dangling); err == nil {
		t.Errorf("FollowSymlink dangling: want error, got nil")
	}

	resolved, exists, err := fsx.TryFollowSymlink(dangling)
	if err != nil {
		t.Fatalf("TryFollowSymlink dangling: want error to be nil, got %v", err)
	}

	if exists {
		t.Errorf("TryFollowSymlink dangling: want exists=false, got true (resolved %q)", resolved)
	}
}

func TestCopyFileOverwritePreservesHardlink(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "dst.txt")
	hardlinked := filepath.Join(root, "hardlinked.txt")

	if err := os.WriteFile(src, []byte("new content"), 0o644); err != nil {
		t.Fatalf("WriteFile src: want error to be nil, got %v", err)
	}

	if err := os.WriteFile(dst, []byte("old content"), 0o644); err != nil {
		t.Fatalf("WriteFile dst: want error to be nil, got %v", err)
	}

	if err := fsx.Hardlink(dst, hardlinked); err != nil {
		t.Fatalf("Hardlink: want error to be nil, got %v", err)
	}

	if err := fsx.CopyFile(dst, src, fsx.Overwrite); err != nil {
		t.Fatalf("CopyFile with Overwrite: want error to be nil, got %v", err)
	}

	got, err := os.ReadFile(hardlinked)
	if err != nil || string(got) != "new content" {
		t.Fatalf("ReadFile hardlinked: want (new content, nil), got (%q, %v)", got, err)
	}
}

func TestCopyFileRejectsDanglingDest(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "dst.txt")

	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	if err := fsx.Symlink(filepath.Join(root, "nonexistent"), dst); err != nil {
		t.Fatalf("Symlink: want error to be nil, got %v", err)
	}

	if err := fsx.CopyFile(dst, src, 0); err == nil {
		t.Errorf("CopyFile onto dangling symlink dest without Overwrite: want error, got nil")
	}
}

func TestMoveEntryKindMismatch(t *testing.T) {
	root := t.TempDir()
	srcFile := filepath.Join(root, "src.txt")
	dstDir := filepath.Join(root, "dst")

	if err := os.WriteFile(srcFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	if err := os.Mkdir(dstDir, 0o755); err != nil {
		t.Fatalf("Mkdir: want error to be nil, got %v", err)
	}

	if err := fsx.MoveEntry(dstDir, srcFile, fsx.OverwriteContent); err == nil {
		t.Errorf("MoveEntry file onto directory: want error, got nil")
	}
}

func TestAnyLinkFallbackOrder(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	newname := filepath.Join(root, "link")

	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	kind, err := fsx.AnyLink(target, newname, true, false)
	if err != nil {
		t.Fatalf("AnyLink: want error to be nil, got %v", err)
	}

	if kind != fsx.LinkSymbolic {
		t.Errorf("AnyLink: want LinkSymbolic (symlink attempted first), got %v", kind)
	}

	resolved, err := fsx.ReadSymlink(newname)
	if err != nil || resolved != target {
		t.Errorf("ReadSymlink: want (%q, nil), got (%q, %v)", target, resolved, err)
	}
}

func TestWalkDetectDanglingSkipsNothing(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "live.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	if err := fsx.Symlink(filepath.Join(root, "nonexistent"), filepath.Join(root, "dangling")); err != nil {
		t.Fatalf("Symlink: want error to be nil, got %v", err)
	}

	var names []string

	err := fsx.Walk(root, fsx.DetectDangling, func(de fsx.DirEntry) error {
		names = append(names, filepath.Base(de.Path))

		return nil
	})
	if err != nil {
		t.Fatalf("Walk: want error to be nil, got %v", err)
	}

	sort.Strings(names)

	want := []string{"dangling", "live.txt"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("Walk DetectDangling: want %v, got %v", want, names)
	}
}

func TestPathSearchIntermediatePrune(t *testing.T) {
	root := t.TempDir()

	paths := []string{
		"a/keep/x.txt",
		"a/skip/y.txt",
	}

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))

		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: want error to be nil, got %v", err)
		}

		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: want error to be nil, got %v", err)
		}
	}

	var matches []string

	err := fsx.PathSearch("a/**/*.txt", root, func(path string, typ fsx.EntryType, intermediate bool) (bool, error) {
		if intermediate {
			return filepath.Base(path) != "skip", nil
		}

		rel, _ := filepath.Rel(root, path)
		matches = append(matches, filepath.ToSlash(rel))

		return true, nil
	})
	if err != nil {
		t.Fatalf("PathSearch: want error to be nil, got %v", err)
	}

	if len(matches) != 1 || matches[0] != "a/keep/x.txt" {
		t.Errorf("PathSearch with pruning: want [a/keep/x.txt], got %v", matches)
	}
}

func TestPathSearchStopOnFinalMatch(t *testing.T) {
	root := t.TempDir()

	paths := []string{"a.txt", "b.txt", "c.txt"}
	for _, p := range paths {
		if err := os.WriteFile(filepath.Join(root, p), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: want error to be nil, got %v", err)
		}
	}

	var matches []string

	err := fsx.PathSearch("*.txt", root, func(path string, typ fsx.EntryType, intermediate bool) (bool, error) {
		matches = append(matches, filepath.Base(path))

		return false, nil
	})
	if err != nil {
		t.Fatalf("PathSearch: want error to be nil, got %v", err)
	}

	if len(matches) != 1 {
		t.Errorf("PathSearch stop-on-first: want exactly 1 match, got %v", matches)
	}
}

func TestRmdirRecursiveIgnoreMissing(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "nonexistent")

	if _, err := fsx.RmdirRecursive(missing, true, false); err == nil {
		t.Errorf("RmdirRecursive missing without ignoreError: want error, got nil")
	}

	ok, err := fsx.RmdirRecursive(missing, true, true)
	if err != nil || ok {
		t.Fatalf("RmdirRecursive missing with ignoreError: want (false, nil), got (%v, %v)", ok, err)
	}

	dir := filepath.Join(root, "d")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll: want error to be nil, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "sub", "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: want error to be nil, got %v", err)
	}

	ok, err = fsx.RmdirRecursive(dir, false, false)
	if err != nil || !ok {
		t.Fatalf("RmdirRecursive includeSelf=false: want (true, nil), got (%v, %v)", ok, err)
	}

	if isDir, _ := fsx.DirExists(dir); !isDir {
		t.Errorf("RmdirRecursive includeSelf=false: directory %q itself was removed", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 0 {
		t.Errorf("RmdirRecursive includeSelf=false: want dir empty, got %v (err %v)", entries, err)
	}

	ok, err = fsx.RmdirRecursive(dir, true, false)
	if err != nil || !ok {
		t.Fatalf("RmdirRecursive includeSelf=true: want (true, nil), got (%v, %v)", ok, err)
	}

	if exists, _ := fsx.EntryExists(dir); exists {
		t.Errorf("RmdirRecursive includeSelf=true: directory %q still exists", dir)
	}
}
