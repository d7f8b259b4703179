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

// Package virt detects whether the current process runs inside an
// OS-level container.
package virt

import (
	"fmt"
	"io/ioutil"
	"os/exec"
)

// DetectVirtBin is the utility consulted by DetectVirtProbe when no
// explicit path is configured.
const DetectVirtBin = "systemd-detect-virt"

// Probe reports whether the process runs inside a container.
type Probe interface {
	IsContainerized() (bool, error)
}

// EnvironmentProbeError is returned when the detection utility could not
// be executed at all.
type EnvironmentProbeError struct {
	Bin string
	Err error
}

func (e *EnvironmentProbeError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Bin, e.Err)
}

func (e *EnvironmentProbeError) Unwrap() error { return e.Err }

// DetectVirtProbe asks systemd-detect-virt(1) in container mode. Only the
// exit status is consulted.
type DetectVirtProbe struct {
	// Path overrides DetectVirtBin.
	Path string
}

func (p DetectVirtProbe) bin() string {
	if p.Path != "" {
		return p.Path
	}
	return DetectVirtBin
}

// IsContainerized implements Probe. A non-zero exit status means "not a
// container"; only a failure to run the utility is an error.
func (p DetectVirtProbe) IsContainerized() (bool, error) {
	bin := p.bin()

	cmd := exec.Command(bin, "--container")
	cmd.Stdout = ioutil.Discard

	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return false, nil
	}
	return false, &EnvironmentProbeError{Bin: bin, Err: err}
}

// StaticProbe always returns the configured answer.
type StaticProbe struct {
	Containerized bool
	Err           error
}

// IsContainerized implements Probe.
func (p StaticProbe) IsContainerized() (bool, error) {
	return p.Containerized, p.Err
}
