// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
)

// ErrTestFailed is returned if a run failed without a more specific error.
var ErrTestFailed = errors.New("test run failed")

// ParseArgsError is returned for invalid flags, environment variables, config
// files or positional arguments. Nothing was run if it occurs.
type ParseArgsError struct {
	msg string
	err error
}

// Error implements the [error] interface.
func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return e.msg + ": " + e.err.Error()
}

// Is implements the [errors.Is] interface.
func (*ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseArgsError) Unwrap() error {
	return e.err
}
