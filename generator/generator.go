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

// Package generator turns a list of zram devices into the systemd units
// that format them and activate them as swap.
package generator

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/errwrap"

	"github.com/jeremycline/zram-generator/common"
	"github.com/jeremycline/zram-generator/pkg/fileutil"
	rlog "github.com/jeremycline/zram-generator/pkg/log"
	"github.com/jeremycline/zram-generator/pkg/virt"
)

// SelfPathError is returned when the path of the running executable,
// needed for the service template, cannot be determined.
type SelfPathError struct {
	Err error
}

func (e *SelfPathError) Error() string {
	return fmt.Sprintf("couldn't get path to generator executable: %v", e.Err)
}

func (e *SelfPathError) Unwrap() error { return e.Err }

// Options is the context of a single generator run.
type Options struct {
	// Root prefixes the modules-load.d drop-in. Empty means "/".
	Root string
	// OutputDir receives units and wants symlinks.
	OutputDir string
	// Executable is the path placed in ExecStart= of the service
	// template. Empty means the running executable.
	Executable string
	// Probe detects containers. nil means virt.DetectVirtProbe{}.
	Probe virt.Probe

	// Log receives status lines, Diag debug details. nil discards.
	Log  *rlog.Logger
	Diag *rlog.Logger
}

func (o *Options) setDefaults() {
	if o.Root == "" {
		o.Root = common.DefaultRoot
	}
	if o.Probe == nil {
		o.Probe = virt.DetectVirtProbe{}
	}
	if o.Log == nil {
		o.Log = rlog.NewDiscard()
	}
	if o.Diag == nil {
		o.Diag = rlog.NewDiscard()
	}
}

func (o *Options) executable() (string, error) {
	if o.Executable != "" {
		return o.Executable, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", &SelfPathError{Err: err}
	}
	return exe, nil
}

// Run writes the units for devices into opts.OutputDir. Nothing is
// written when devices is empty or when running inside a container. The
// first failure aborts the run; files written before it are left in place.
func Run(devices []Device, opts Options) error {
	opts.setDefaults()

	if len(devices) == 0 {
		opts.Log.Print("No devices configured, exiting.")
		return nil
	}

	containerized, err := opts.Probe.IsContainerized()
	if err != nil {
		return errwrap.Wrap(errors.New("failed to detect container environment"), err)
	}
	if containerized {
		opts.Log.Print("Running in a container, exiting.")
		return nil
	}

	devicesMade := false
	for _, dev := range devices {
		made, err := HandleDevice(opts.OutputDir, dev, opts.Log, opts.Diag)
		if err != nil {
			if se, ok := errwrap.GetType(err, &fileutil.SymlinkCreateError{}).(*fileutil.SymlinkCreateError); ok && se.Exists() {
				err = errwrap.Wrap(fmt.Errorf("%s already holds generated units", opts.OutputDir), err)
			}
			return errwrap.Wrap(fmt.Errorf("failed to generate units for %s", dev.Name), err)
		}
		devicesMade = devicesMade || made
	}
	if !devicesMade {
		return nil
	}

	exe, err := opts.executable()
	if err != nil {
		return err
	}
	if err := MakeServiceTemplate(opts.OutputDir, exe); err != nil {
		return err
	}
	return MakeModulesLoad(opts.Root)
}

// HandleDevice writes the swap unit of dev and enrolls it into
// swap.target. It reports whether any output was produced.
func HandleDevice(outputDir string, dev Device, log, diag *rlog.Logger) (bool, error) {
	if log == nil {
		log = rlog.NewDiscard()
	}
	if diag == nil {
		diag = rlog.NewDiscard()
	}

	swapName := common.SwapUnitName(dev.Name)
	log.Printf("Creating %s for %s (%dMB)", swapName, common.DevicePath(dev.Name), dev.DiskSizeMB())
	diag.Printf("%s: %s uncompressed, %s", dev.Name, humanize.IBytes(dev.DiskSize), common.InstantiatedCreateServiceName(dev.Name))

	uw := NewUnitWriter(diag)
	uw.WriteUnit(
		common.SwapUnitPath(outputDir, dev.Name),
		"failed to write a swap unit",
		SwapUnitOptions(dev)...,
	)
	uw.Link(
		common.SwapWantTarget(dev.Name),
		common.SwapWantPath(outputDir, dev.Name),
		"failed to enroll swap unit into swap.target",
	)
	if err := uw.Error(); err != nil {
		return false, err
	}
	return true, nil
}

// MakeServiceTemplate writes swap-create@.service into outputDir.
func MakeServiceTemplate(outputDir, executable string) error {
	uw := NewUnitWriter(nil)
	uw.WriteUnit(
		common.CreateServiceTemplatePath(outputDir),
		"failed to write a device service template",
		ServiceTemplateOptions(executable)...,
	)
	return uw.Error()
}

// MakeModulesLoad makes sure the zram module is loaded at boot by writing
// run/modules-load.d/zram.conf under root.
func MakeModulesLoad(root string) error {
	path := common.ModulesLoadPath(root)
	if err := fileutil.EnsureParentDir(path); err != nil {
		return errwrap.Wrap(errors.New("failed to create modules-load.d directory"), err)
	}
	if err := fileutil.WriteFile(path, ModulesLoad(), fileutil.DefaultFilePerm); err != nil {
		return errwrap.Wrap(errors.New("failed to write configuration for loading a module"), err)
	}
	return nil
}
