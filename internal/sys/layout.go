// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "path/filepath"

// UEFITarget is the target triple the loader is built for.
const UEFITarget = "x86_64-unknown-uefi"

const (
	loaderFileName    = "loader.efi"
	diskImageFileName = "loader.gdt"
	firmwareFileName  = "OVMF_CODE.fd"
)

// Layout resolves the fixed file locations of a project for a [Profile].
//
// The loader and the disk image live in the profile's subdirectory of the
// cargo target tree. The firmware is shared by all profiles.
type Layout struct {
	Root    string
	Profile Profile
}

// TargetDir returns the profile specific output directory.
func (l Layout) TargetDir() string {
	return filepath.Join(l.Root, "target", UEFITarget, l.Profile.String())
}

// LoaderPath returns the path of the UEFI loader binary.
func (l Layout) LoaderPath() string {
	return filepath.Join(l.TargetDir(), loaderFileName)
}

// DiskImagePath returns the path of the raw disk image written by the disk
// image builder.
func (l Layout) DiskImagePath() string {
	return filepath.Join(l.TargetDir(), diskImageFileName)
}

// FirmwarePath returns the default location of the UEFI firmware image.
func (l Layout) FirmwarePath() string {
	return filepath.Join(l.Root, "build", firmwareFileName)
}
