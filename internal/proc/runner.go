// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"
)

// DefaultWaitDelay is the time a process gets to terminate after it was asked
// to on context cancellation, before it is killed.
const DefaultWaitDelay = 5 * time.Second

// Runner runs a [Command] to completion.
//
// It returns a [LaunchError] if the process could not be started. If the
// process ran, its [Result] is returned, regardless of the exit code. If the
// context is done before the process terminated, the process is terminated
// and the context's error is returned along with the [Result].
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// RunnerFunc is an adapter to use ordinary functions as [Runner].
type RunnerFunc func(ctx context.Context, cmd Command) (Result, error)

// Run implements [Runner].
func (f RunnerFunc) Run(ctx context.Context, cmd Command) (Result, error) {
	return f(ctx, cmd)
}

// ExecRunner is a [Runner] that runs real processes with [exec.Cmd].
//
// Processes are asked to terminate with SIGTERM on context cancellation. On
// Linux, they also receive SIGTERM if the current process dies.
type ExecRunner struct {
	// WaitDelay overrides [DefaultWaitDelay], if not zero.
	WaitDelay time.Duration
}

// Run implements [Runner].
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	execCmd := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	execCmd.Dir = cmd.Dir
	execCmd.Stdin = cmd.Stdin
	execCmd.Stdout = cmd.Stdout
	execCmd.Stderr = cmd.Stderr
	execCmd.SysProcAttr = sysProcAttr()
	execCmd.Cancel = func() error {
		return terminate(execCmd.Process)
	}

	execCmd.WaitDelay = DefaultWaitDelay
	if r.WaitDelay > 0 {
		execCmd.WaitDelay = r.WaitDelay
	}

	slog.Debug("Starting process",
		slog.String("name", cmd.Name),
		slog.String("command", cmd.String()))

	// The parent death signal is bound to the thread that started the child,
	// not to the process. Keep this goroutine on its thread until the child
	// terminated, so the thread does not exit while the child is running.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	err := execCmd.Start()
	if err != nil {
		return Result{ExitCode: -1}, &LaunchError{
			Name: cmd.Name,
			Path: cmd.Path,
			Err:  err,
		}
	}

	err = execCmd.Wait()

	result := Result{
		ExitCode: execCmd.ProcessState.ExitCode(),
		State:    execCmd.ProcessState.String(),
	}

	slog.Debug("Process terminated",
		slog.String("name", cmd.Name),
		slog.Int("exit_code", result.ExitCode),
		slog.String("state", result.State))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%s: %w", cmd.Name, ctxErr)
	}

	// Non-zero exit codes are reported via the result only.
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, fmt.Errorf("%s: wait: %w", cmd.Name, err)
	}

	return result, nil
}
