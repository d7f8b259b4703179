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

package generator

import (
	"errors"

	"github.com/coreos/go-systemd/v22/unit"
	"github.com/hashicorp/errwrap"

	"github.com/jeremycline/zram-generator/pkg/fileutil"
	rlog "github.com/jeremycline/zram-generator/pkg/log"
)

// UnitWriter writes systemd units and wants symlinks, preserving the first
// error that occurred. Any method can be invoked multiple times without
// error checking; once an error occurred every later call is skipped. The
// error can be retrieved using Error().
type UnitWriter struct {
	err  error
	diag *rlog.Logger
}

// NewUnitWriter returns a new UnitWriter logging skipped work to diag.
func NewUnitWriter(diag *rlog.Logger) *UnitWriter {
	if diag == nil {
		diag = rlog.NewDiscard()
	}
	return &UnitWriter{diag: diag}
}

// WriteUnit writes a systemd unit at path with the given options if no
// previous error occurred.
func (uw *UnitWriter) WriteUnit(path string, errmsg string, opts ...*unit.UnitOption) {
	if uw.err != nil {
		return
	}

	b, err := RenderUnit(opts)
	if err != nil {
		uw.err = errwrap.Wrap(errors.New(errmsg), err)
		return
	}
	if err := fileutil.WriteFile(path, b, fileutil.DefaultFilePerm); err != nil {
		uw.err = errwrap.Wrap(errors.New(errmsg), err)
	}
}

// Link creates a symlink at link pointing to target if no previous error
// occurred. Anything already present at link is an error.
func (uw *UnitWriter) Link(target, link, errmsg string) {
	if uw.err != nil {
		return
	}

	uw.diag.Printf("linking %s -> %s", link, target)
	if err := fileutil.CreateSymlink(target, link); err != nil {
		uw.err = errwrap.Wrap(errors.New(errmsg), err)
	}
}

// Error returns the first error that occurred during Write* invocations.
func (uw *UnitWriter) Error() error {
	return uw.err
}
