// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/uefirun/internal/diskimage"
	"github.com/aibor/uefirun/internal/proc"
	"github.com/aibor/uefirun/internal/qemu"
)

// IO is the standard IO both stages inherit.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run runs the given [Request] with the given [proc.Runner].
//
// The disk image is built first. If that fails, QEMU is not started and
// [Failure] is returned right away. Otherwise QEMU is run and the [Verdict]
// is derived from both results with [VerdictFor].
//
// The returned error explains a [Failure]. It may also be non-nil along with
// [Success], if only the serial log could not be written. The [Verdict] is
// authoritative in any case.
func Run(
	ctx context.Context,
	req Request,
	runner proc.Runner,
	stdio IO,
) (Verdict, error) {
	err := req.normalize()
	if err != nil {
		return Failure, err
	}

	slog.Debug("Run request",
		slog.String("kernel", req.KernelPath),
		slog.String("profile", req.Profile.String()),
		slog.String("platform", req.Platform.String()),
		slog.String("root", req.Root),
		slog.String("firmware", req.Firmware))

	builderResult, err := diskimage.Build(
		ctx,
		runner,
		req.DiskImageSpec(),
		stdio.Stdout,
		stdio.Stderr,
	)
	if err != nil {
		return Failure, &StageError{Stage: StageDiskImage, Err: err}
	}

	cmd, err := qemu.NewCommand(req.QemuSpec())
	if err != nil {
		return Failure, &StageError{Stage: StageEmulator, Err: err}
	}

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	emulatorResult, err := runEmulator(ctx, req, cmd, runner, stdio)
	verdict := VerdictFor(builderResult, emulatorResult)

	if err != nil {
		return verdict, &StageError{Stage: StageEmulator, Err: err}
	}

	return verdict, nil
}

func runEmulator(
	ctx context.Context,
	req Request,
	cmd *qemu.Command,
	runner proc.Runner,
	stdio IO,
) (proc.Result, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeoutCause(ctx, req.Timeout, ErrTimeout)
		defer cancel()
	}

	result, err := cmd.Run(ctx, runner, stdio.Stdin, stdio.Stdout, stdio.Stderr)

	if errors.Is(context.Cause(ctx), ErrTimeout) {
		err = errors.Join(fmt.Errorf("%w after %s", ErrTimeout, req.Timeout), err)
	}

	return result, err
}
