// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package proc

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
