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

package main

import (
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremycline/zram-generator/config"
	"github.com/jeremycline/zram-generator/generator"
	rktlog "github.com/jeremycline/zram-generator/pkg/log"
	"github.com/jeremycline/zram-generator/pkg/virt"
)

const (
	cliName        = "zram-generator"
	cliDescription = "zram-generator, the systemd generator for swap on zram devices"
)

var (
	globalFlags = struct {
		Debug      bool
		Root       string
		ConfigFile string
		DetectVirt string
	}{}

	cmdExitCode int

	stderr *rktlog.Logger
	diag   *rktlog.Logger
	stdout *rktlog.Logger
)

var cmdZramGenerator = &cobra.Command{
	Use:   cliName + " NORMAL_DIR [EARLY_DIR LATE_DIR]",
	Short: cliDescription,
	Long: `Generates swap units for the configured zram devices into NORMAL_DIR.
EARLY_DIR and LATE_DIR are accepted for compatibility with the systemd
generator calling convention and are not written to.`,
	Args:          cobra.RangeArgs(1, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runWrapper(runGenerator),
}

func init() {
	cmdZramGenerator.Flags().BoolVar(&globalFlags.Debug, "debug", false, "print out more debug information to stderr")
	cmdZramGenerator.Flags().StringVar(&globalFlags.Root, "root", "", "root prefix for run/modules-load.d (overrides $ZRAM_GENERATOR_ROOT)")
	cmdZramGenerator.Flags().StringVar(&globalFlags.ConfigFile, "config", "", "device configuration file (default: search <root>/{etc,run,usr/lib}/systemd)")
	cmdZramGenerator.Flags().StringVar(&globalFlags.DetectVirt, "detect-virt", virt.DetectVirtBin, "container detection utility")

	stderr, diag, stdout = rktlog.NewLogSet(cliName, false)
}

// runWrapper returns a func(cmd *cobra.Command, args []string) that
// internally records the command function return code.
func runWrapper(cf func(cmd *cobra.Command, args []string) (exit int)) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdExitCode = cf(cmd, args)
	}
}

func runGenerator(cmd *cobra.Command, args []string) int {
	stderr.SetDebug(globalFlags.Debug)
	diag.SetDebug(globalFlags.Debug)
	if !globalFlags.Debug {
		diag.SetOutput(ioutil.Discard)
	}

	v := config.New()
	if globalFlags.Root != "" {
		v.Set("root", globalFlags.Root)
	}

	cfg, err := config.Load(v, globalFlags.ConfigFile)
	if err != nil {
		stderr.PrintE("failed to load configuration", err)
		return 1
	}
	if cfg.File != "" {
		diag.Printf("using configuration %s", cfg.File)
	}

	opts := generator.Options{
		Root:      cfg.Root,
		OutputDir: args[0],
		Probe:     virt.DetectVirtProbe{Path: globalFlags.DetectVirt},
		Log:       stdout,
		Diag:      diag,
	}
	if err := generator.Run(cfg.Devices, opts); err != nil {
		stderr.PrintE("failed to generate units", err)
		return 1
	}

	return 0
}

func main() {
	if err := cmdZramGenerator.Execute(); err != nil {
		stderr.FatalE("invalid invocation", err)
	}
	os.Exit(cmdExitCode)
}
