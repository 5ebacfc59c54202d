// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package harness

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKernel is returned if the [Request] has no kernel path.
	ErrNoKernel = errors.New("no kernel given")

	// ErrTimeout is returned if the emulator stage exceeded
	// [Request.Timeout].
	ErrTimeout = errors.New("emulator timed out")
)

// Stage is a step of a [Run].
type Stage string

// Stages of a [Run] in the order they run.
const (
	StageDiskImage Stage = "disk image"
	StageEmulator  Stage = "emulator"
)

// StageError wraps an error that occurred in a [Stage].
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the [error] interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Is implements the [errors.Is] interface.
func (*StageError) Is(other error) bool {
	_, ok := other.(*StageError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StageError) Unwrap() error {
	return e.Err
}
