// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for uefirun. It handles
// flag, environment and config file parsing, logging setup and maps the
// outcome of a run to the process exit code.
package cmd
