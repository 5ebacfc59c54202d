// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package diskimage invokes the external disk image builder that packages the
// UEFI loader and a kernel into a raw bootable disk image.
//
// The builder is a cargo package run for the host's target triple. The layout
// of the produced image is entirely up to the builder. Only its exit code is
// evaluated.
package diskimage
