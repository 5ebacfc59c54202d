// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package proc

import "os"

func terminate(process *os.Process) error {
	return process.Kill() //nolint:wrapcheck
}
