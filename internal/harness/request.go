// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package harness

import (
	"fmt"
	"time"

	"github.com/aibor/uefirun/internal/diskimage"
	"github.com/aibor/uefirun/internal/qemu"
	"github.com/aibor/uefirun/internal/sys"
)

// Request describes a single [Run].
type Request struct {
	// KernelPath is the kernel binary to embed in the disk image. Required.
	KernelPath string

	// Profile selects the loader and disk image paths and the emulator's
	// timing and SMP setup.
	Profile sys.Profile

	// Platform selects the target triple of the disk image builder.
	Platform sys.Platform

	// Root is the project root that contains the cargo target tree and the
	// firmware. Defaults to the current working directory.
	Root string

	// Firmware overrides the firmware image path of the [sys.Layout].
	Firmware string

	// Builder tool overrides. Empty values use the [diskimage] defaults.
	CargoExecutable string
	Toolchain       string
	BuilderPackage  string

	// QemuExecutable overrides [qemu.DefaultExecutable].
	QemuExecutable string

	// QemuArgs are passed to QEMU verbatim and in order.
	QemuArgs []string

	// SerialLog is an optional file the guest's serial output is copied to.
	SerialLog string

	// Timeout bounds the emulator stage, if not zero. The disk image builder
	// is not bounded.
	Timeout time.Duration
}

// Layout returns the [sys.Layout] of the request.
func (r *Request) Layout() sys.Layout {
	return sys.Layout{
		Root:    r.Root,
		Profile: r.Profile,
	}
}

// normalize resolves the kernel and root paths to absolute paths. The
// builder runs in the root directory, so relative paths would change their
// meaning.
func (r *Request) normalize() error {
	if r.KernelPath == "" {
		return ErrNoKernel
	}

	kernel, err := sys.AbsolutePath(r.KernelPath)
	if err != nil {
		return fmt.Errorf("kernel path: %w", err)
	}

	r.KernelPath = kernel

	if r.Root == "" {
		r.Root = "."
	}

	root, err := sys.AbsolutePath(r.Root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}

	r.Root = root

	if r.Firmware == "" {
		r.Firmware = r.Layout().FirmwarePath()
	}

	return nil
}

// DiskImageSpec returns the [diskimage.Spec] for the builder invocation.
func (r *Request) DiskImageSpec() diskimage.Spec {
	spec := diskimage.Spec{
		Executable: r.CargoExecutable,
		Toolchain:  r.Toolchain,
		Package:    r.BuilderPackage,
		Platform:   r.Platform,
		LoaderPath: r.Layout().LoaderPath(),
		KernelPath: r.KernelPath,
		Dir:        r.Root,
	}
	spec.AddDefaults()

	return spec
}

// QemuSpec returns the [qemu.CommandSpec] for the emulator invocation.
func (r *Request) QemuSpec() qemu.CommandSpec {
	spec := qemu.CommandSpec{
		Executable: r.QemuExecutable,
		Firmware:   r.Firmware,
		DiskImage:  r.Layout().DiskImagePath(),
		Profile:    r.Profile,
		ExtraArgs:  r.QemuArgs,
		SerialLog:  r.SerialLog,
	}
	spec.AddDefaults()

	return spec
}
