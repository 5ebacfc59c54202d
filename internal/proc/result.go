// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

// Result is the outcome of a process that was started.
type Result struct {
	// ExitCode of the process. It is -1 if the process was terminated by a
	// signal.
	ExitCode int

	// State is a human readable description of how the process terminated,
	// e.g. "exit status 1" or "signal: killed".
	State string
}

// Success returns true if the process exited with exit code 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}
