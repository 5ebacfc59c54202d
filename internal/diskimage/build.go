// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import (
	"context"
	"fmt"
	"io"

	"github.com/aibor/uefirun/internal/proc"
)

// Build runs the builder described by the given [Spec] and waits for it to
// finish.
//
// It returns the builder's [proc.Result] along with a [proc.LaunchError] if
// the builder could not be started or a [proc.ExitError] if it exited with a
// non-zero exit code. Both mean no usable disk image is present.
func Build(
	ctx context.Context,
	runner proc.Runner,
	spec Spec,
	stdout, stderr io.Writer,
) (proc.Result, error) {
	err := spec.Validate()
	if err != nil {
		return proc.Result{ExitCode: -1}, err
	}

	result, err := runner.Run(ctx, spec.Command(stdout, stderr))
	if err != nil {
		return result, fmt.Errorf("run: %w", err)
	}

	return result, proc.CheckResult(ProcessName, result)
}
