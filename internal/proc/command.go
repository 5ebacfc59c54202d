// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"io"
	"slices"

	"github.com/kballard/go-shellquote"
)

// Command is a single external process invocation.
type Command struct {
	// Name of the process used in logs and errors, e.g. "qemu".
	Name string

	// Path of the executable. If it contains no path separators, it is
	// looked up in PATH.
	Path string

	// Arguments passed to the executable, not including the executable.
	Args []string

	// Working directory. Empty means the current working directory.
	Dir string

	// Standard IO of the process. Use [os.Stdin], [os.Stdout] and
	// [os.Stderr] to let the process inherit the IO of the current process.
	// Nil connects the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Argv returns the complete argument vector including the executable.
func (c *Command) Argv() []string {
	return slices.Concat([]string{c.Path}, c.Args)
}

// String returns the command line as it could be pasted into a shell.
func (c *Command) String() string {
	return shellquote.Join(c.Argv()...)
}
