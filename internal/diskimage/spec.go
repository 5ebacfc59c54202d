// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import (
	"io"

	"github.com/aibor/uefirun/internal/proc"
	"github.com/aibor/uefirun/internal/sys"
)

// Defaults for the builder invocation.
const (
	DefaultExecutable = "cargo"
	DefaultToolchain  = "stable"
	DefaultPackage    = "disk_image"
)

// ProcessName is the name of the builder in logs and errors.
const ProcessName = "disk image builder"

// Spec defines a single builder invocation.
type Spec struct {
	// Executable is the cargo binary that runs the builder.
	Executable string

	// Toolchain is passed as "+<toolchain>" to select the rustup toolchain.
	// Empty omits the selector.
	Toolchain string

	// Package is the cargo package of the builder.
	Package string

	// Platform selects the target triple the builder is compiled for.
	Platform sys.Platform

	// LoaderPath is the UEFI loader binary embedded in the image.
	LoaderPath string

	// KernelPath is the kernel binary embedded in the image.
	KernelPath string

	// Dir is the working directory of the builder, usually the project root.
	Dir string
}

// AddDefaults sets default values for all empty tool fields.
func (s *Spec) AddDefaults() {
	if s.Executable == "" {
		s.Executable = DefaultExecutable
	}

	if s.Package == "" {
		s.Package = DefaultPackage
	}
}

// Validate checks that all paths to embed are given.
func (s *Spec) Validate() error {
	if s.Executable == "" {
		return &ArgumentError{"no builder executable given"}
	}

	if s.Package == "" {
		return &ArgumentError{"no builder package given"}
	}

	if s.LoaderPath == "" {
		return &ArgumentError{"no loader path given"}
	}

	if s.KernelPath == "" {
		return ErrEmptyKernelPath
	}

	return nil
}

// Arguments returns the builder's arguments, not including the executable.
//
// The loader and kernel paths are passed as positional arguments to the
// builder itself, separated from cargo's arguments by "--".
func (s *Spec) Arguments() []string {
	args := make([]string, 0, 9)

	if s.Toolchain != "" {
		args = append(args, "+"+s.Toolchain)
	}

	return append(args,
		"run",
		"--package", s.Package,
		"--target", s.Platform.TargetTriple(),
		"--",
		s.LoaderPath,
		s.KernelPath,
	)
}

// Command returns the [proc.Command] for the builder with the given output
// writers.
func (s *Spec) Command(stdout, stderr io.Writer) proc.Command {
	return proc.Command{
		Name:   ProcessName,
		Path:   s.Executable,
		Args:   s.Arguments(),
		Dir:    s.Dir,
		Stdout: stdout,
		Stderr: stderr,
	}
}
