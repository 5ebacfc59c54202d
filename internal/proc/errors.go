// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package proc

import (
	"errors"
	"fmt"
)

// ErrNonZeroExitCode is wrapped by [ExitError].
var ErrNonZeroExitCode = errors.New("non-zero exit code")

// LaunchError is returned if a process could not be started, e.g. because the
// executable does not exist or is not executable.
type LaunchError struct {
	Name string
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s (%s): %v", e.Name, e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*LaunchError) Is(other error) bool {
	_, ok := other.(*LaunchError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitError indicates that a process ran but reported failure with a
// non-zero exit code.
type ExitError struct {
	Name   string
	Result Result
}

// Error implements the [error] interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Result.State)
}

// Is implements the [errors.Is] interface.
func (*ExitError) Is(other error) bool {
	_, ok := other.(*ExitError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (*ExitError) Unwrap() error {
	return ErrNonZeroExitCode
}

// CheckResult returns an [ExitError] if the given [Result] is not a success.
func CheckResult(name string, result Result) error {
	if result.Success() {
		return nil
	}

	return &ExitError{Name: name, Result: result}
}
