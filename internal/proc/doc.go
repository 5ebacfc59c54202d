// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package proc runs external processes for uefirun. Both the disk image
// builder and QEMU are run through a [Runner], so tests can substitute them
// with fakes.
//
// A process that can not be started at all is reported as [LaunchError]. A
// process that ran is reported as [Result] with its exit code, whatever the
// code is. Interpreting the exit code is up to the caller.
package proc
