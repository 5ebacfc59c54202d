// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import "errors"

// ErrEmptyKernelPath is returned if no kernel is given to embed.
var ErrEmptyKernelPath = errors.New("kernel path must not be empty")

// ArgumentError indicates an incomplete [Spec].
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
