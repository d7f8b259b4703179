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

// Package fileutil contains the filesystem primitives used to lay out
// generated units: parent directory creation, symlinks and whole-file
// writes. Every failure is reported with the offending path attached.
package fileutil

import (
	"os"
	"path/filepath"
)

const (
	// DefaultDirPerm is used for every directory created on behalf of a
	// generated file.
	DefaultDirPerm os.FileMode = 0755
	// DefaultFilePerm is used for generated unit and configuration files.
	DefaultFilePerm os.FileMode = 0644
)

// EnsureParentDir creates all missing ancestor directories of path.
func EnsureParentDir(path string) error {
	if path == "" {
		return &ParentLookupError{Path: path}
	}
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return &ParentLookupError{Path: path}
	}

	if err := os.MkdirAll(parent, DefaultDirPerm); err != nil {
		return &DirCreateError{Dir: parent, Err: err}
	}
	return nil
}

// CreateSymlink creates a symbolic link at link whose content is target.
// The target is stored as given; it is neither cleaned nor resolved, so
// relative targets stay relative. Missing parents of link are created
// first. An existing entry at link is an error.
func CreateSymlink(target, link string) error {
	if err := EnsureParentDir(link); err != nil {
		return err
	}
	if err := os.Symlink(target, link); err != nil {
		return &SymlinkCreateError{Target: target, Link: link, Err: err}
	}
	return nil
}

// WriteFile replaces the contents of path with data, creating the file
// with perm if needed. The parent directory must already exist.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = &FileWriteError{Path: path, Err: e}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}
