// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	name = "uefirun"

	configFlag      = "config"
	printConfigFlag = "print-config"

	usageExample = `  Boot a kernel with the debug loader:
    uefirun target/x86_64-os/debug/kernel

  As cargo runner with additional QEMU arguments:
    uefirun --profile release kernel.bin -s -S

  QEMU arguments can also be given in the environment:
    UEFIRUN_QEMU_ARGS="-m 512M -display none" uefirun kernel.bin

All flags can also be set via environment variables with prefix UEFIRUN_
(e.g. UEFIRUN_QEMU_BIN) or in the YAML config file ./.uefirun.yaml.`
)

// Set on build.
var version = ""

type flags struct {
	cfg Config

	configFile  string
	printConfig bool

	// Flags set from the environment or the config file.
	applied []string
}

func newFlags() *flags {
	return &flags{
		cfg:        defaultConfig(),
		configFile: defaultConfigFile,
	}
}

func (f *flags) register(flagSet *pflag.FlagSet) {
	// Parse flags only up to the kernel path. Everything after it is passed
	// to QEMU.
	flagSet.SetInterspersed(false)

	flagSet.Var(
		&f.cfg.Profile,
		"profile",
		"build profile of the loader and disk image: debug, release",
	)

	flagSet.Var(
		&f.cfg.Platform,
		"platform",
		"host platform the disk image builder runs on: linux or anything else",
	)

	flagSet.StringVar(
		&f.cfg.Root,
		"root",
		f.cfg.Root,
		"project root directory containing target/ and build/",
	)

	flagSet.StringVar(
		&f.cfg.Firmware,
		"firmware",
		f.cfg.Firmware,
		"UEFI firmware image (default <root>/build/OVMF_CODE.fd)",
	)

	flagSet.StringVar(
		&f.cfg.QemuBin,
		"qemu-bin",
		f.cfg.QemuBin,
		"QEMU binary to use",
	)

	flagSet.StringVar(
		&f.cfg.CargoBin,
		"cargo-bin",
		f.cfg.CargoBin,
		"cargo binary used to run the disk image builder",
	)

	flagSet.StringVar(
		&f.cfg.Toolchain,
		"toolchain",
		f.cfg.Toolchain,
		"rustup toolchain for the disk image builder, empty for cargo's default",
	)

	flagSet.StringVar(
		&f.cfg.BuilderPackage,
		"builder-package",
		f.cfg.BuilderPackage,
		"cargo package of the disk image builder",
	)

	flagSet.DurationVar(
		&f.cfg.Timeout,
		"timeout",
		f.cfg.Timeout,
		"terminate QEMU after this duration, 0 disables the timeout",
	)

	flagSet.StringVar(
		&f.cfg.SerialLog,
		"serial-log",
		f.cfg.SerialLog,
		"also write QEMU's stdout (the guest serial console) to this file",
	)

	flagSet.BoolVar(
		&f.cfg.Debug,
		"debug",
		f.cfg.Debug,
		"enable debug output",
	)

	flagSet.StringVar(
		&f.configFile,
		configFlag,
		f.configFile,
		"YAML config file, keys are the long flag names",
	)

	flagSet.BoolVar(
		&f.printConfig,
		printConfigFlag,
		f.printConfig,
		"print the resolved configuration and exit",
	)
}

// resolve completes the config from environment, config file and the
// positional arguments.
func (f *flags) resolve(flagSet *pflag.FlagSet, args []string) error {
	v, err := newViper(f.configFile, flagSet.Changed(configFlag))
	if err != nil {
		return &ParseArgsError{msg: "config", err: err}
	}

	f.applied, err = applyViper(v, flagSet)
	if err != nil {
		return &ParseArgsError{msg: "config", err: err}
	}

	f.cfg.QemuArgs, err = qemuArgs(v)
	if err != nil {
		return &ParseArgsError{msg: "config", err: err}
	}

	if len(args) > 0 {
		// First positional argument is the kernel. All further ones are
		// passed to QEMU verbatim.
		f.cfg.Kernel = args[0]
		f.cfg.PassThrough = args[1:]
	}

	return nil
}

func versionString() string {
	if version != "" {
		return version
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "dev"
	}

	return buildInfo.Main.Version
}

func newRootCommand(
	f *flags,
	cfg IO,
	runE func(cmd *cobra.Command, args []string) error,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags...] kernel [qemu args...]",
		Short: "Package a kernel into a UEFI disk image and boot it in QEMU",
		Long: "uefirun builds a UEFI disk image from the loader and the given " +
			"kernel and boots it in QEMU.\n\n" +
			"It exits with 0 only if the guest reported success via the " +
			"isa-debug-exit device, with 1 otherwise.",
		Example:       usageExample,
		Version:       versionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runE,
	}

	cmd.SetIn(cfg.Stdin)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ParseArgsError{msg: "flag parse", err: err}
	})

	f.register(cmd.Flags())

	return cmd
}
