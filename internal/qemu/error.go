// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
)

var (
	// ErrGuestFailed is returned if the guest reported failed tests via the
	// isa-debug-exit device.
	ErrGuestFailed = errors.New("guest reported test failure")

	// ErrGuestUnknownExitCode is returned if the guest used the
	// isa-debug-exit device with an exit code other than the known ones.
	ErrGuestUnknownExitCode = errors.New("guest exited with unknown exit code")

	// ErrGuestNoExitCode is returned if QEMU exited without the guest using
	// the isa-debug-exit device, e.g. on guest crash, shutdown or QEMU
	// errors.
	ErrGuestNoExitCode = errors.New("guest did not use debug exit device")

	// ErrArgumentCollision is returned if two [Argument]s collide.
	ErrArgumentCollision = errors.New("colliding args")
)

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// CommandError wraps any error occurred during Command execution.
type CommandError struct {
	Err error

	// Guest is true if the error was communicated by the guest, as opposed
	// to host errors like a missing QEMU binary.
	Guest bool

	// ExitStatus is the exit status of the QEMU process.
	ExitStatus int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	scope := "host"
	if e.Guest {
		scope = "guest"
	}

	return fmt.Sprintf("%s: %v (exit status %d)", scope, e.Err, e.ExitStatus)
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// SerialLogError wraps errors that occur while copying the serial console
// output into the log file.
type SerialLogError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *SerialLogError) Error() string {
	return fmt.Sprintf("serial log %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*SerialLogError) Is(other error) bool {
	_, ok := other.(*SerialLogError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *SerialLogError) Unwrap() error {
	return e.Err
}

// guestError classifies the exit status of a QEMU process that ran.
//
// It returns nil only for [SuccessStatus].
func guestError(status int) error {
	if status == SuccessStatus {
		return nil
	}

	code, ok := GuestExitCodeFrom(status)

	var err error

	switch {
	case !ok:
		err = ErrGuestNoExitCode
	case code == GuestExitFailed:
		err = ErrGuestFailed
	default:
		err = fmt.Errorf("%w: %s", ErrGuestUnknownExitCode, code)
	}

	return &CommandError{
		Err:        err,
		Guest:      ok,
		ExitStatus: status,
	}
}
