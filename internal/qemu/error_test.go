// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/uefirun/internal/qemu"
	"github.com/stretchr/testify/assert"
)

func TestArgumentErrorIs(t *testing.T) {
	//nolint:testifylint
	assert.ErrorIs(t, error(&qemu.ArgumentError{}), &qemu.ArgumentError{})
	assert.NotErrorIs(t, assert.AnError, &qemu.ArgumentError{})
}

func TestCommandErrorIs(t *testing.T) {
	//nolint:testifylint
	assert.ErrorIs(t, error(&qemu.CommandError{}), &qemu.CommandError{})
	assert.NotErrorIs(t, assert.AnError, &qemu.CommandError{})

	err := &qemu.CommandError{Err: qemu.ErrGuestFailed, Guest: true}
	assert.ErrorIs(t, err, qemu.ErrGuestFailed)
}

func TestSerialLogErrorIs(t *testing.T) {
	//nolint:testifylint
	assert.ErrorIs(t, error(&qemu.SerialLogError{}), &qemu.SerialLogError{})
	assert.NotErrorIs(t, assert.AnError, &qemu.SerialLogError{})

	err := &qemu.SerialLogError{Path: "serial.log", Err: assert.AnError}
	assert.ErrorIs(t, err, assert.AnError)
	assert.EqualError(t, err,
		"serial log serial.log: assert.AnError general error for testing")
}
