// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// sysProcAttr makes children receive SIGTERM when the current process dies,
// so an emulator does not outlive a killed harness.
//
// The kernel sends the signal when the OS thread that forked the child exits.
// [ExecRunner.Run] locks its goroutine to the thread for the lifetime of the
// child, so only the end of the process triggers it.
//
// The child stays in the process group of the current process. It must remain
// in the terminal's foreground group, as QEMU reads the serial console from
// the inherited stdin.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Pdeathsig: unix.SIGTERM,
	}
}
