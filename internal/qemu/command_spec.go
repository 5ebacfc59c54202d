// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aibor/uefirun/internal/sys"
)

// DefaultExecutable is the QEMU binary used if none is given.
const DefaultExecutable = "qemu-system-x86_64"

// releaseSMP is the number of CPUs used for release profile runs.
const releaseSMP = 2

// DebugExitDevice is an isa-debug-exit device. The guest writes its exit code
// to the I/O port at IOBase.
type DebugExitDevice struct {
	IOBase uint16
	IOSize uint8
}

// DefaultDebugExitDevice is the device the guest kernel expects.
var DefaultDebugExitDevice = DebugExitDevice{
	IOBase: 0xf4,
	IOSize: 0x04,
}

func (d DebugExitDevice) argument() Argument {
	return RepeatableArg("device",
		"isa-debug-exit",
		fmt.Sprintf("iobase=%#x", d.IOBase),
		fmt.Sprintf("iosize=0x%02x", d.IOSize),
	)
}

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Path to the UEFI firmware image.
	Firmware string

	// Path to the raw disk image to boot from.
	DiskImage string

	// Profile selects timing and CPU setup. [sys.ProfileRelease] runs with
	// deterministic instruction counting and multiple CPUs.
	Profile sys.Profile

	// DebugExit is the device the guest communicates its exit code with.
	DebugExit DebugExitDevice

	// ExtraArgs are passed to QEMU verbatim and in order after all
	// arguments built from the other fields. They are neither validated nor
	// interpreted.
	ExtraArgs []string

	// SerialLog is an optional file the serial console output is copied to,
	// in addition to stdout.
	SerialLog string
}

// AddDefaults sets default values for all empty fields that have one.
func (s *CommandSpec) AddDefaults() {
	if s.Executable == "" {
		s.Executable = DefaultExecutable
	}

	if s.DebugExit == (DebugExitDevice{}) {
		s.DebugExit = DefaultDebugExitDevice
	}
}

// Validate checks that all required fields are set.
func (s *CommandSpec) Validate() error {
	switch {
	case s.Executable == "":
		return &ArgumentError{"no qemu executable given"}
	case s.Firmware == "":
		return &ArgumentError{"no firmware given"}
	case s.DiskImage == "":
		return &ArgumentError{"no disk image given"}
	case s.DebugExit.IOSize == 0:
		return &ArgumentError{"debug exit device without io size"}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command, without
// [CommandSpec.ExtraArgs].
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		RepeatableArg("drive", "format=raw", "file="+escapeOptionValue(s.DiskImage)),
		UniqueArg("bios", s.Firmware),
		s.DebugExit.argument(),
		// Serial console on the terminal QEMU runs in.
		RepeatableArg("serial", "stdio"),
		// A crashing guest must not restart the tests silently.
		UniqueArg("no-reboot"),
	}

	if s.Profile == sys.ProfileRelease {
		args = append(args,
			UniqueArg("rtc", "base=localtime"),
			// Deterministic guest clock derived from the instruction count.
			UniqueArg("icount", "shift=auto", "sleep=on"),
			UniqueArg("smp", strconv.Itoa(releaseSMP)),
		)
	}

	return args
}

// Arguments returns the complete argument list for the QEMU command, not
// including the executable.
func (s *CommandSpec) Arguments() ([]string, error) {
	args, err := BuildArgumentStrings(s.arguments())
	if err != nil {
		return nil, err
	}

	return slices.Concat(args, s.ExtraArgs), nil
}

// escapeOptionValue escapes the QEMU sub-option separator, so paths with
// commas are not split into multiple options.
func escapeOptionValue(value string) string {
	return strings.ReplaceAll(value, ",", ",,")
}
