// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "fmt"

// GuestExitCode is the value a guest writes to the isa-debug-exit device.
//
// Only the lowest 7 bits survive as host exit status, as QEMU exits with
// 2*e+1 and process exit statuses are 8 bit wide.
type GuestExitCode uint8

// Guest exit codes of the guest kernel's test framework. Both are chosen so
// that they do not clash with QEMU's own exit statuses 0 and 1.
const (
	GuestExitSuccess GuestExitCode = 0x10
	GuestExitFailed  GuestExitCode = 0x11
)

// SuccessStatus is the only host exit status that indicates a successful
// guest run. It is [GuestExitSuccess] as observed by the host.
const SuccessStatus = 2*int(GuestExitSuccess) + 1

const maxExitStatus = 0xff

// HostStatus returns the exit status QEMU terminates with when the guest
// writes the receiver to the isa-debug-exit device.
func (c GuestExitCode) HostStatus() int {
	return (2*int(c) + 1) & maxExitStatus
}

// String implements [fmt.Stringer].
func (c GuestExitCode) String() string {
	switch c {
	case GuestExitSuccess:
		return "success"
	case GuestExitFailed:
		return "failed"
	default:
		return fmt.Sprintf("%#x", uint8(c))
	}
}

// GuestExitCodeFrom decodes the host exit status of QEMU back into the exit
// code written by the guest.
//
// It returns false if the status can not be caused by the isa-debug-exit
// device. This is the case for even and negative statuses. QEMU exits with 0
// on regular shutdown and with 1 on its own errors. The latter is ambiguous,
// as it is also the status for guest exit code 0. It is reported as not
// decodable, since guests do not use exit code 0.
func GuestExitCodeFrom(status int) (GuestExitCode, bool) {
	if status <= 1 || status > maxExitStatus || status%2 == 0 {
		return 0, false
	}

	return GuestExitCode((status - 1) / 2), true
}
