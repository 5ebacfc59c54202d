// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSysProcAttr(t *testing.T) {
	attr := sysProcAttr()
	require.NotNil(t, attr)

	assert.Equal(t, unix.SIGTERM, attr.Pdeathsig)
	assert.False(t, attr.Setpgid, "child must stay in the foreground group")
}
