// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/uefirun/internal/proc"
)

// ProcessName is the name of the QEMU process in logs and errors.
const ProcessName = "qemu"

// Command is a single QEMU command that can be run.
type Command struct {
	executable string
	args       []string
	serialLog  string
}

// NewCommand creates a new [Command] with the given spec.
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := spec.Arguments()
	if err != nil {
		return nil, err
	}

	cmd := &Command{
		executable: spec.Executable,
		args:       args,
		serialLog:  spec.SerialLog,
	}

	return cmd, nil
}

// Args returns the arguments the QEMU binary is called with.
func (c *Command) Args() []string {
	return c.args
}

// String returns the command line as it could be pasted into a shell.
func (c *Command) String() string {
	cmd := c.procCommand(nil, nil, nil)
	return cmd.String()
}

func (c *Command) procCommand(
	stdin io.Reader,
	stdout, stderr io.Writer,
) proc.Command {
	return proc.Command{
		Name:   ProcessName,
		Path:   c.executable,
		Args:   c.args,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run runs the command with the given runner and blocks until QEMU exits.
//
// The IO is passed to QEMU as is. With the serial console on stdio, guest
// output is streamed live to stdout.
//
// It returns the [proc.Result] of the QEMU process and an error, unless the
// guest reported success via the isa-debug-exit device. If QEMU could not be
// started or was interrupted, the error is a [CommandError] with Guest unset.
// Otherwise the exit status is classified and returned as [CommandError].
//
// A serial log that can not be written does not stop QEMU. Its
// [SerialLogError] is joined to the returned error.
func (c *Command) Run(
	ctx context.Context,
	runner proc.Runner,
	stdin io.Reader,
	stdout, stderr io.Writer,
) (proc.Result, error) {
	var (
		serialLog *serialLog
		logErr    error
	)

	if c.serialLog != "" {
		serialLog, logErr = startSerialLog(c.serialLog, stdout)
		if logErr != nil {
			slog.Warn("Running without serial log", slog.Any("error", logErr))
		} else {
			stdout = serialLog.Writer()
		}
	}

	result, runErr := runner.Run(ctx, c.procCommand(stdin, stdout, stderr))

	if serialLog != nil {
		logErr = serialLog.Close()
	}

	if runErr != nil {
		return result, errors.Join(&CommandError{
			Err:        fmt.Errorf("run: %w", runErr),
			ExitStatus: result.ExitCode,
		}, logErr)
	}

	slog.Debug("QEMU terminated",
		slog.Int("exit_status", result.ExitCode),
		slog.String("state", result.State))

	return result, errors.Join(guestError(result.ExitCode), logErr)
}
