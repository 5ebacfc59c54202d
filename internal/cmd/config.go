// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/aibor/uefirun/internal/diskimage"
	"github.com/aibor/uefirun/internal/harness"
	"github.com/aibor/uefirun/internal/qemu"
	"github.com/aibor/uefirun/internal/sys"
	"gopkg.in/yaml.v3"
)

// Config is the resolved configuration of a single run.
type Config struct {
	Profile        sys.Profile   `yaml:"profile"`
	Platform       sys.Platform  `yaml:"platform"`
	Root           string        `yaml:"root"`
	Firmware       string        `yaml:"firmware,omitempty"`
	QemuBin        string        `yaml:"qemu-bin"`
	CargoBin       string        `yaml:"cargo-bin"`
	Toolchain      string        `yaml:"toolchain"`
	BuilderPackage string        `yaml:"builder-package"`
	Timeout        time.Duration `yaml:"timeout"`
	SerialLog      string        `yaml:"serial-log,omitempty"`
	Debug          bool          `yaml:"debug"`
	QemuArgs       []string      `yaml:"qemu-args,omitempty"`

	Kernel      string   `yaml:"kernel,omitempty"`
	PassThrough []string `yaml:"pass-through,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Profile:        sys.ProfileDebug,
		Platform:       sys.HostPlatform(),
		Root:           ".",
		QemuBin:        qemu.DefaultExecutable,
		CargoBin:       diskimage.DefaultExecutable,
		Toolchain:      diskimage.DefaultToolchain,
		BuilderPackage: diskimage.DefaultPackage,
	}
}

// Request returns the [harness.Request] for the config.
//
// QEMU arguments from the environment or config file come first, followed
// by the pass-through arguments from the command line.
func (c *Config) Request() harness.Request {
	return harness.Request{
		KernelPath:      c.Kernel,
		Profile:         c.Profile,
		Platform:        c.Platform,
		Root:            c.Root,
		Firmware:        c.Firmware,
		CargoExecutable: c.CargoBin,
		Toolchain:       c.Toolchain,
		BuilderPackage:  c.BuilderPackage,
		QemuExecutable:  c.QemuBin,
		QemuArgs:        slices.Concat(c.QemuArgs, c.PassThrough),
		SerialLog:       c.SerialLog,
		Timeout:         c.Timeout,
	}
}

// WriteYAML writes the config as YAML document.
func (c *Config) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(c)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}

	return nil
}
