// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func setupLogging(writer io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)))
}

// errorPrefix returns the prefix for error messages printed to the given
// writer. It is red if the writer is a terminal and colors are not disabled.
func errorPrefix(writer io.Writer) string {
	prefix := "Error [" + name + "]:"

	file, ok := writer.(*os.File)
	if !ok || color.NoColor || !isatty.IsTerminal(file.Fd()) {
		return prefix
	}

	red := color.New(color.FgRed, color.Bold)
	red.EnableColor()

	return red.Sprint(prefix)
}
