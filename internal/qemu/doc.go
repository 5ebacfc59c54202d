// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running the QEMU command
// that boots a UEFI disk image. It expects the required QEMU binary to be
// present on the system.
//
// The guest system is expected to communicate its test result via an
// isa-debug-exit device. Writing the value e to the device's I/O port makes
// QEMU exit with status 2*e+1. See [GuestExitCode] for the codes in use.
//
// The serial console is connected to QEMU's stdio, so guest output is
// streamed live. It is never parsed. Only the exit status is evaluated.
package qemu
