// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package harness

import (
	"github.com/aibor/uefirun/internal/proc"
	"github.com/aibor/uefirun/internal/qemu"
)

// Verdict is the overall result of a [Run].
type Verdict int

const (
	// Failure is any outcome other than [Success].
	Failure Verdict = iota
	// Success means the disk image was built and the guest reported success
	// via the isa-debug-exit device.
	Success
)

// VerdictFor derives the [Verdict] from the results of the disk image builder
// and the emulator.
//
// The emulator result is only considered if the builder succeeded. It is a
// [Success] only if QEMU exited with exactly [qemu.SuccessStatus].
func VerdictFor(builder, emulator proc.Result) Verdict {
	if !builder.Success() {
		return Failure
	}

	if emulator.ExitCode != qemu.SuccessStatus {
		return Failure
	}

	return Success
}

// ExitCode returns the exit code of the harness process for the [Verdict].
func (v Verdict) ExitCode() int {
	if v == Success {
		return 0
	}

	return 1
}

// String implements [fmt.Stringer].
func (v Verdict) String() string {
	if v == Success {
		return "success"
	}

	return "failure"
}
