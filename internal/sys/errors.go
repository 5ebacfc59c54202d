// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrProfileNotSupported is returned for unknown profile names.
	ErrProfileNotSupported = errors.New("profile not supported")

	// ErrEmptyPath is returned if a path is required but empty.
	ErrEmptyPath = errors.New("path must not be empty")
)
