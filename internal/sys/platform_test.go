// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"runtime"
	"testing"

	"github.com/aibor/uefirun/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		tag            string
		expected       sys.Platform
		expectedTriple string
	}{
		{
			tag:            "linux",
			expected:       sys.PlatformLinux,
			expectedTriple: "x86_64-unknown-linux-gnu",
		},
		{
			tag:            "darwin",
			expected:       sys.PlatformOther,
			expectedTriple: "x86_64-apple-darwin",
		},
		{
			tag:            "windows",
			expected:       sys.PlatformOther,
			expectedTriple: "x86_64-apple-darwin",
		},
		{
			tag:            "",
			expected:       sys.PlatformOther,
			expectedTriple: "x86_64-apple-darwin",
		},
		{
			tag:            "Linux",
			expected:       sys.PlatformOther,
			expectedTriple: "x86_64-apple-darwin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			platform := sys.ParsePlatform(tt.tag)

			assert.Equal(t, tt.expected, platform)
			assert.Equal(t, tt.expectedTriple, platform.TargetTriple())
		})
	}
}

func TestPlatformTriplesDisjoint(t *testing.T) {
	assert.NotEqual(t,
		sys.PlatformLinux.TargetTriple(),
		sys.PlatformOther.TargetTriple(),
	)
}

func TestHostPlatform(t *testing.T) {
	expected := sys.PlatformOther
	if runtime.GOOS == "linux" {
		expected = sys.PlatformLinux
	}

	assert.Equal(t, expected, sys.HostPlatform())
}

func TestPlatformText(t *testing.T) {
	var platform sys.Platform

	require.NoError(t, platform.UnmarshalText([]byte("linux")))
	assert.Equal(t, sys.PlatformLinux, platform)

	text, err := platform.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "linux", string(text))

	require.NoError(t, platform.Set("freebsd"))
	assert.Equal(t, sys.PlatformOther, platform)
	assert.Equal(t, "other", platform.String())
}
