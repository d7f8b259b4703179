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
	"fmt"

	"golang.org/x/sys/unix"
)

// ParentLookupError is returned when a path has no parent directory to
// create, e.g. the filesystem root.
type ParentLookupError struct {
	Path string
}

func (e *ParentLookupError) Error() string {
	return fmt.Sprintf("couldn't get parent of %s", e.Path)
}

// DirCreateError is returned when creating the ancestors of a path fails.
type DirCreateError struct {
	Dir string
	Err error
}

func (e *DirCreateError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Dir, e.Err)
}

func (e *DirCreateError) Unwrap() error { return e.Err }

// SymlinkCreateError is returned when a symbolic link cannot be created.
// Target is the link content, Link the location of the link itself.
type SymlinkCreateError struct {
	Target string
	Link   string
	Err    error
}

func (e *SymlinkCreateError) Error() string {
	return fmt.Sprintf("failed to create symlink at %s (pointing to %s): %v", e.Link, e.Target, e.Err)
}

func (e *SymlinkCreateError) Unwrap() error { return e.Err }

// Exists reports whether the link could not be created because something
// already occupies its location.
func (e *SymlinkCreateError) Exists() bool {
	return errors.Is(e.Err, unix.EEXIST)
}

// FileWriteError is returned when writing a generated file fails.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }
