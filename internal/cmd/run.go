// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/uefirun/internal/harness"
	"github.com/aibor/uefirun/internal/proc"
	"github.com/aibor/uefirun/internal/qemu"
	"github.com/spf13/cobra"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func runHarness(
	ctx context.Context,
	cfg Config,
	runner proc.Runner,
	stdio IO,
) error {
	verdict, err := harness.Run(ctx, cfg.Request(), runner, harness.IO(stdio))

	slog.Debug("Run finished", slog.String("verdict", verdict.String()))

	if verdict == harness.Success {
		if err != nil {
			slog.Warn("Run succeeded with error", slog.Any("error", err))
		}

		return nil
	}

	if err == nil {
		return ErrTestFailed
	}

	return err
}

func handleRunError(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	// The guest ran and reported its failure properly. Its own output says
	// what went wrong.
	if errors.Is(err, qemu.ErrGuestFailed) {
		slog.Warn("Guest reported test failure")
		return 1
	}

	fmt.Fprintln(stderr, errorPrefix(stderr), err.Error())

	if errors.Is(err, &ParseArgsError{}) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
	}

	return 1
}

func run(ctx context.Context, args []string, cfg IO, runner proc.Runner) int {
	flags := newFlags()

	runE := func(cmd *cobra.Command, args []string) error {
		err := flags.resolve(cmd.Flags(), args)
		if err != nil {
			return err
		}

		setupLogging(cfg.Stderr, flags.cfg.Debug)
		logAppliedFlags(cmd.Flags(), flags.applied)

		if flags.printConfig {
			return flags.cfg.WriteYAML(cmd.OutOrStdout())
		}

		if flags.cfg.Kernel == "" {
			return &ParseArgsError{msg: "missing argument", err: harness.ErrNoKernel}
		}

		return runHarness(cmd.Context(), flags.cfg, runner, cfg)
	}

	cmd := newRootCommand(flags, cfg, runE)

	if len(args) > 0 {
		args = args[1:]
	}

	cmd.SetArgs(args)

	return handleRunError(cmd.ExecuteContext(ctx), cfg.Stderr)
}

// Run is the main entry point for the CLI command. The first element of args
// is the program name, as in [os.Args].
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	return run(ctx, args, cfg, &proc.ExecRunner{})
}
