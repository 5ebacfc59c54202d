// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"context"
	"io"
	"sync"
)

// Stub is the predefined outcome of a [StubRunner] call.
type Stub struct {
	Result Result
	Err    error

	// Stdout is written to the command's stdout, if set.
	Stdout string
}

// StubRunner is a [Runner] that does not start any process. It records all
// commands and returns the [Stub] registered for the command's name. Commands
// without a registered stub succeed.
type StubRunner struct {
	Stubs map[string]Stub

	mu    sync.Mutex
	calls []Command
}

// Run implements [Runner].
func (r *StubRunner) Run(_ context.Context, cmd Command) (Result, error) {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	r.mu.Unlock()

	stub := r.Stubs[cmd.Name]

	if stub.Stdout != "" && cmd.Stdout != nil {
		_, err := io.WriteString(cmd.Stdout, stub.Stdout)
		if err != nil {
			return Result{ExitCode: -1}, err //nolint:wrapcheck
		}
	}

	return stub.Result, stub.Err
}

// Calls returns all commands run so far in the order they were run.
func (r *StubRunner) Calls() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Command(nil), r.calls...)
}

// CallsFor returns all commands with the given name run so far.
func (r *StubRunner) CallsFor(name string) []Command {
	var calls []Command

	for _, call := range r.Calls() {
		if call.Name == name {
			calls = append(calls, call)
		}
	}

	return calls
}
