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
	"bytes"
	"fmt"
	"io"

	"github.com/coreos/go-systemd/v22/unit"

	"github.com/jeremycline/zram-generator/common"
)

// SwapUnitOptions returns the options of the swap unit activating dev.
func SwapUnitOptions(dev Device) []*unit.UnitOption {
	createService := common.InstantiatedCreateServiceName(dev.Name)
	return []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", "Compressed swap on "+common.DevicePath(dev.Name)),
		unit.NewUnitOption("Unit", "Requires", createService),
		unit.NewUnitOption("Unit", "After", createService),
		unit.NewUnitOption("Swap", "What", common.DevicePath(dev.Name)),
		unit.NewUnitOption("Swap", "Priority", "100"),
	}
}

// ServiceTemplateOptions returns the options of the swap-create@.service
// template. executable is the absolute path of the binary invoked with
// --setup-device for every instance.
func ServiceTemplateOptions(executable string) []*unit.UnitOption {
	return []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", "Create swap on /dev/%i"),
		unit.NewUnitOption("Unit", "Wants", "systemd-modules-load.service"),
		unit.NewUnitOption("Unit", "After", "systemd-modules-load.service"),
		unit.NewUnitOption("Unit", "After", "dev-%i.device"),
		unit.NewUnitOption("Unit", "DefaultDependencies", "false"),
		unit.NewUnitOption("Service", "Type", "oneshot"),
		unit.NewUnitOption("Service", "RemainAfterExit", "yes"),
		unit.NewUnitOption("Service", "ExecStartPre", "-modprobe "+common.ModuleName),
		unit.NewUnitOption("Service", "ExecStart", fmt.Sprintf("%s --setup-device '%%i'", executable)),
	}
}

// RenderUnit serializes opts behind the generated-file banner.
func RenderUnit(opts []*unit.UnitOption) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(common.Banner)
	buf.WriteString("\n\n")
	if _, err := io.Copy(&buf, unit.Serialize(opts)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SwapUnit renders the swap unit for dev.
func SwapUnit(dev Device) ([]byte, error) {
	return RenderUnit(SwapUnitOptions(dev))
}

// ServiceTemplate renders the swap-create@.service template.
func ServiceTemplate(executable string) ([]byte, error) {
	return RenderUnit(ServiceTemplateOptions(executable))
}

// ModulesLoad renders the modules-load.d drop-in loading the zram module.
func ModulesLoad() []byte {
	return []byte(common.ModuleName + "\n")
}
