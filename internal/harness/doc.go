// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package harness runs a single kernel test: it builds the disk image, boots
// it with QEMU and derives a [Verdict] from both process results.
//
// The stages run strictly in sequence. QEMU is only started if the disk image
// builder succeeded.
package harness
