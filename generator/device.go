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

// Device describes a configured zram device. Devices are produced by the
// configuration layer; the generator only reads them.
type Device struct {
	// Name is the kernel device name, e.g. "zram0". It is used verbatim in
	// unit names and device paths.
	Name string `mapstructure:"name"`
	// DiskSize is the uncompressed device size in bytes.
	DiskSize uint64 `mapstructure:"disksize"`

	// The fields below are consumed by the device setup step, not by the
	// generator.
	CompressionAlgorithm string `mapstructure:"compression-algorithm"`
	Streams              uint   `mapstructure:"streams"`
	WritebackDevice      string `mapstructure:"writeback-device"`
}

// DiskSizeMB returns DiskSize in whole mebibytes.
func (d Device) DiskSizeMB() uint64 {
	return d.DiskSize / 1024 / 1024
}
