// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"strings"
	"testing"

	"github.com/aibor/uefirun/internal/sys"
	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name             string
		layout           sys.Layout
		expectedLoader   string
		expectedDisk     string
		expectedFirmware string
	}{
		{
			name: "debug",
			layout: sys.Layout{
				Root:    "/src/os",
				Profile: sys.ProfileDebug,
			},
			expectedLoader:   "/src/os/target/x86_64-unknown-uefi/debug/loader.efi",
			expectedDisk:     "/src/os/target/x86_64-unknown-uefi/debug/loader.gdt",
			expectedFirmware: "/src/os/build/OVMF_CODE.fd",
		},
		{
			name: "release",
			layout: sys.Layout{
				Root:    "/src/os",
				Profile: sys.ProfileRelease,
			},
			expectedLoader:   "/src/os/target/x86_64-unknown-uefi/release/loader.efi",
			expectedDisk:     "/src/os/target/x86_64-unknown-uefi/release/loader.gdt",
			expectedFirmware: "/src/os/build/OVMF_CODE.fd",
		},
		{
			name: "relative root",
			layout: sys.Layout{
				Root:    "os",
				Profile: sys.ProfileDebug,
			},
			expectedLoader:   "os/target/x86_64-unknown-uefi/debug/loader.efi",
			expectedDisk:     "os/target/x86_64-unknown-uefi/debug/loader.gdt",
			expectedFirmware: "os/build/OVMF_CODE.fd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedLoader, tt.layout.LoaderPath())
			assert.Equal(t, tt.expectedDisk, tt.layout.DiskImagePath())
			assert.Equal(t, tt.expectedFirmware, tt.layout.FirmwarePath())
		})
	}
}

func TestLayoutProfilesDoNotLeak(t *testing.T) {
	debug := sys.Layout{Root: "/p", Profile: sys.ProfileDebug}
	release := sys.Layout{Root: "/p", Profile: sys.ProfileRelease}

	assert.NotContains(t, debug.TargetDir(), "release")
	assert.NotContains(t, release.TargetDir(), "debug")
	assert.NotEqual(t, debug.DiskImagePath(), release.DiskImagePath())
	assert.True(t, strings.HasSuffix(debug.LoaderPath(), "/debug/loader.efi"))
}

func TestAbsolutePath(t *testing.T) {
	_, err := sys.AbsolutePath("")
	assert.ErrorIs(t, err, sys.ErrEmptyPath)

	abs := sys.MustAbsolutePath(t, "kernel.bin")
	assert.True(t, strings.HasPrefix(abs, "/"))
	assert.True(t, strings.HasSuffix(abs, "/kernel.bin"))
}
