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

// Package common defines the unit names and file locations shared by the
// generator and the zram-generator command.
package common

import (
	"fmt"
	"path"
	"path/filepath"
)

const (
	// ModuleName is the kernel module backing zram devices.
	ModuleName = "zram"

	// DefaultRoot is the root prefix used when none is configured.
	DefaultRoot = "/"
	// RootEnv names the environment variable overriding DefaultRoot.
	RootEnv = "ZRAM_GENERATOR_ROOT"

	// Banner heads every file written by the generator.
	Banner = "# Automatically generated by zram-generator"

	swapTargetWantsDir = "swap.target.wants"
	modulesLoadDir     = "run/modules-load.d"

	createServiceTemplate = "swap-create@.service"
)

// SwapUnitName returns the swap unit name for the given device name.
func SwapUnitName(device string) string {
	return fmt.Sprintf("dev-%s.swap", device)
}

// SwapUnitPath returns the path of the swap unit for device in dir.
func SwapUnitPath(dir, device string) string {
	return filepath.Join(dir, SwapUnitName(device))
}

// SwapWantPath returns the swap.target.wants symlink path for device in dir.
func SwapWantPath(dir, device string) string {
	return filepath.Join(dir, swapTargetWantsDir, SwapUnitName(device))
}

// SwapWantTarget returns the content of the swap.target.wants symlink for
// device, relative to the wants directory.
func SwapWantTarget(device string) string {
	return path.Join("..", SwapUnitName(device))
}

// DevicePath returns the device node path for device.
func DevicePath(device string) string {
	return path.Join("/dev", device)
}

// CreateServiceTemplatePath returns the path of the service template in dir.
func CreateServiceTemplatePath(dir string) string {
	return filepath.Join(dir, createServiceTemplate)
}

// InstantiatedCreateServiceName returns the instance of the service
// template for device.
func InstantiatedCreateServiceName(device string) string {
	return fmt.Sprintf("swap-create@%s.service", device)
}

// ModulesLoadPath returns the modules-load.d drop-in path under root.
func ModulesLoadPath(root string) string {
	return filepath.Join(root, modulesLoadDir, ModuleName+".conf")
}
