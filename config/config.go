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

// Package config loads the root prefix and the list of zram devices the
// generator should act on. Devices are read from an optional
// zram-generator.{yaml,json,toml} file; sizes accept Kubernetes-style
// quantities such as "2Gi" or "512M" as well as plain byte counts.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/hashicorp/errwrap"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/jeremycline/zram-generator/common"
	"github.com/jeremycline/zram-generator/generator"
)

const (
	configName = "zram-generator"

	keyRoot    = "root"
	keyDevices = "devices"
)

// searchDirs are relative to the root prefix, highest priority first.
var searchDirs = []string{
	"etc/systemd",
	"run/systemd",
	"usr/lib/systemd",
}

// Config is the generator input after loading and validation.
type Config struct {
	Root    string
	Devices []generator.Device
	// File is the configuration file that was read, empty if none.
	File string
}

// New returns a viper instance with the generator defaults and the root
// environment override registered.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyRoot, common.DefaultRoot)
	// BindEnv only fails when called without a key.
	_ = v.BindEnv(keyRoot, common.RootEnv)
	return v
}

// Load reads the configuration. If file is empty, zram-generator.* is
// searched for in the standard directories below the root prefix and a
// missing file yields an empty device list.
func Load(v *viper.Viper, file string) (*Config, error) {
	root := v.GetString(keyRoot)
	if root == "" {
		root = common.DefaultRoot
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		for _, dir := range searchDirs {
			v.AddConfigPath(filepath.Join(root, dir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return nil, errwrap.Wrap(errors.New("error reading config file"), err)
		}
	}

	var devices []generator.Device
	if err := v.UnmarshalKey(keyDevices, &devices, viper.DecodeHook(mapstructure.DecodeHookFuncType(quantityHook))); err != nil {
		return nil, errwrap.Wrap(errors.New("error unmarshaling devices"), err)
	}

	if err := validate(devices); err != nil {
		return nil, err
	}

	return &Config{
		Root:    root,
		Devices: devices,
		File:    v.ConfigFileUsed(),
	}, nil
}

// quantityHook decodes sizes given as quantities into byte counts.
func quantityHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t.Kind() != reflect.Uint64 || f.Kind() != reflect.String {
		return data, nil
	}
	return ParseSize(data.(string))
}

// ParseSize converts a quantity such as "2Gi" into a number of bytes.
func ParseSize(s string) (uint64, error) {
	q, err := resource.ParseQuantity(strings.TrimSpace(s))
	if err != nil {
		return 0, errwrap.Wrap(fmt.Errorf("invalid size %q", s), err)
	}
	if q.Sign() < 0 {
		return 0, fmt.Errorf("invalid size %q: must not be negative", s)
	}
	return uint64(q.Value()), nil
}

func validate(devices []generator.Device) error {
	seen := make(map[string]bool, len(devices))
	for i, d := range devices {
		switch {
		case d.Name == "":
			return fmt.Errorf("device #%d: missing name", i)
		case strings.ContainsAny(d.Name, "/ \t\n"):
			return fmt.Errorf("device %q: invalid name", d.Name)
		case seen[d.Name]:
			return fmt.Errorf("device %q: configured more than once", d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}
