// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package proc

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminate asks the process to terminate. QEMU handles SIGTERM by shutting
// down the guest and exiting.
func terminate(process *os.Process) error {
	return process.Signal(unix.SIGTERM) //nolint:wrapcheck
}
