// Copyright 2026 The zram-generator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fileutil

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()

	target := filepath.Join(dir, "run", "modules-load.d", "zram.conf")
	if err := EnsureParentDir(target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fi, err := os.Stat(filepath.Join(dir, "run", "modules-load.d"))
	if err != nil {
		t.Fatalf("parent was not created: %v", err)
	}
	if !fi.IsDir() {
		t.Errorf("parent is not a directory")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("path itself should not have been created, got %v", err)
	}

	// existing parents are fine
	if err := EnsureParentDir(target); err != nil {
		t.Errorf("unexpected error on second call: %v", err)
	}
}

func TestEnsureParentDirNoParent(t *testing.T) {
	for _, p := range []string{"/", ""} {
		err := EnsureParentDir(p)
		var pe *ParentLookupError
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected ParentLookupError, got %v", p, err)
		}
	}
}

func TestEnsureParentDirBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "swap.target.wants")
	if err := ioutil.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := EnsureParentDir(filepath.Join(blocker, "dev-zram0.swap"))
	var de *DirCreateError
	if !errors.As(err, &de) {
		t.Fatalf("expected DirCreateError, got %v", err)
	}
	if de.Dir != blocker {
		t.Errorf("expected dir %q, got %q", blocker, de.Dir)
	}
}

func TestCreateSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "swap.target.wants", "dev-zram0.swap")

	if err := CreateSymlink("../dev-zram0.swap", link); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatal(err)
	}
	if got != "../dev-zram0.swap" {
		t.Errorf("expected link target %q, got %q", "../dev-zram0.swap", got)
	}
}

func TestCreateSymlinkExists(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dev-zram0.swap")

	if err := CreateSymlink("../dev-zram0.swap", link); err != nil {
		t.Fatal(err)
	}
	err := CreateSymlink("../dev-zram0.swap", link)
	var se *SymlinkCreateError
	if !errors.As(err, &se) {
		t.Fatalf("expected SymlinkCreateError, got %v", err)
	}
	if se.Target != "../dev-zram0.swap" || se.Link != link {
		t.Errorf("unexpected paths in error: %q -> %q", se.Link, se.Target)
	}
	if !se.Exists() {
		t.Errorf("expected Exists() to be true")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zram.conf")

	if err := WriteFile(path, []byte("zram\nstale\n"), DefaultFilePerm); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("zram\n"), DefaultFilePerm); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "zram\n" {
		t.Errorf("expected file to be truncated, got %q", b)
	}

	err = WriteFile(filepath.Join(dir, "missing", "zram.conf"), []byte("zram\n"), DefaultFilePerm)
	var we *FileWriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected FileWriteError, got %v", err)
	}
	if we.Path != filepath.Join(dir, "missing", "zram.conf") {
		t.Errorf("unexpected path in error: %q", we.Path)
	}
}
