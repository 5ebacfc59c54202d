// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package harness_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aibor/uefirun/internal/diskimage"
	"github.com/aibor/uefirun/internal/harness"
	"github.com/aibor/uefirun/internal/proc"
	"github.com/aibor/uefirun/internal/qemu"
	"github.com/aibor/uefirun/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, profile sys.Profile, qemuArgs ...string) harness.Request {
	t.Helper()

	return harness.Request{
		KernelPath: "/tmp/k.bin",
		Profile:    profile,
		Platform:   sys.PlatformLinux,
		Root:       t.TempDir(),
		Toolchain:  diskimage.DefaultToolchain,
		QemuArgs:   qemuArgs,
	}
}

func stubs(builder, emulator proc.Stub) *proc.StubRunner {
	return &proc.StubRunner{
		Stubs: map[string]proc.Stub{
			diskimage.ProcessName: builder,
			qemu.ProcessName:      emulator,
		},
	}
}

func exited(code int) proc.Stub {
	return proc.Stub{Result: proc.Result{ExitCode: code}}
}

func TestRunVerdict(t *testing.T) {
	tests := []struct {
		name            string
		builder         proc.Stub
		emulator        proc.Stub
		expected        harness.Verdict
		expectedErr     error
		expectedEmuRuns int
	}{
		{
			name:            "success",
			builder:         exited(0),
			emulator:        exited(33),
			expected:        harness.Success,
			expectedEmuRuns: 1,
		},
		{
			name:            "guest failed",
			builder:         exited(0),
			emulator:        exited(35),
			expected:        harness.Failure,
			expectedErr:     qemu.ErrGuestFailed,
			expectedEmuRuns: 1,
		},
		{
			name:            "regular shutdown",
			builder:         exited(0),
			emulator:        exited(0),
			expected:        harness.Failure,
			expectedErr:     qemu.ErrGuestNoExitCode,
			expectedEmuRuns: 1,
		},
		{
			name:            "qemu error",
			builder:         exited(0),
			emulator:        exited(1),
			expected:        harness.Failure,
			expectedErr:     qemu.ErrGuestNoExitCode,
			expectedEmuRuns: 1,
		},
		{
			name:        "builder failed",
			builder:     exited(101),
			emulator:    exited(33),
			expected:    harness.Failure,
			expectedErr: &proc.ExitError{},
		},
		{
			name: "builder launch failure",
			builder: proc.Stub{
				Result: proc.Result{ExitCode: -1},
				Err:    &proc.LaunchError{Err: assert.AnError},
			},
			emulator:    exited(33),
			expected:    harness.Failure,
			expectedErr: &proc.LaunchError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := stubs(tt.builder, tt.emulator)

			verdict, err := harness.Run(
				t.Context(),
				newRequest(t, sys.ProfileDebug),
				runner,
				harness.IO{},
			)

			assert.Equal(t, tt.expected, verdict)
			assert.Len(t, runner.CallsFor(qemu.ProcessName), tt.expectedEmuRuns)

			if tt.expectedErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.expectedErr)
			require.ErrorIs(t, err, &harness.StageError{})
		})
	}
}

func TestRunStageOrder(t *testing.T) {
	runner := stubs(exited(0), exited(33))

	_, err := harness.Run(
		t.Context(),
		newRequest(t, sys.ProfileDebug),
		runner,
		harness.IO{},
	)
	require.NoError(t, err)

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, diskimage.ProcessName, calls[0].Name)
	assert.Equal(t, qemu.ProcessName, calls[1].Name)
}

func TestRunBuilderFailureStage(t *testing.T) {
	runner := stubs(exited(1), exited(33))

	_, err := harness.Run(
		t.Context(),
		newRequest(t, sys.ProfileDebug),
		runner,
		harness.IO{},
	)

	var stageErr *harness.StageError

	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, harness.StageDiskImage, stageErr.Stage)
}

func TestRunInvocations(t *testing.T) {
	req := newRequest(t, sys.ProfileDebug, "-s", "-S")
	root := req.Root
	runner := stubs(exited(0), exited(33))

	verdict, err := harness.Run(t.Context(), req, runner, harness.IO{})
	require.NoError(t, err)
	assert.Equal(t, harness.Success, verdict)

	builder := runner.CallsFor(diskimage.ProcessName)
	require.Len(t, builder, 1)
	assert.Equal(t, []string{
		"cargo",
		"+stable",
		"run",
		"--package", "disk_image",
		"--target", "x86_64-unknown-linux-gnu",
		"--",
		filepath.Join(root, "target/x86_64-unknown-uefi/debug/loader.efi"),
		"/tmp/k.bin",
	}, builder[0].Argv())
	assert.Equal(t, root, builder[0].Dir)

	emulator := runner.CallsFor(qemu.ProcessName)
	require.Len(t, emulator, 1)
	assert.Equal(t, []string{
		"qemu-system-x86_64",
		"-drive", "format=raw,file=" + filepath.Join(root, "target/x86_64-unknown-uefi/debug/loader.gdt"),
		"-bios", filepath.Join(root, "build/OVMF_CODE.fd"),
		"-device", "isa-debug-exit,iobase=0xf4,iosize=0x04",
		"-serial", "stdio",
		"-no-reboot",
		"-s", "-S",
	}, emulator[0].Argv())
}

func TestRunReleaseProfile(t *testing.T) {
	req := newRequest(t, sys.ProfileRelease)
	req.Platform = sys.PlatformOther
	runner := stubs(exited(0), exited(33))

	_, err := harness.Run(t.Context(), req, runner, harness.IO{})
	require.NoError(t, err)

	builder := runner.CallsFor(diskimage.ProcessName)
	require.Len(t, builder, 1)
	assert.Contains(t, builder[0].Args, "x86_64-apple-darwin")
	assert.Contains(t, builder[0].Args,
		filepath.Join(req.Root, "target/x86_64-unknown-uefi/release/loader.efi"))

	emulator := runner.CallsFor(qemu.ProcessName)
	require.Len(t, emulator, 1)
	assert.Equal(t, []string{"2"}, qemu.ArgumentValues(emulator[0].Args, "smp"))
	assert.Equal(t, []string{"shift=auto,sleep=on"},
		qemu.ArgumentValues(emulator[0].Args, "icount"))
}

func TestRunFirmwareOverride(t *testing.T) {
	req := newRequest(t, sys.ProfileDebug)
	req.Firmware = "/usr/share/OVMF/OVMF_CODE.fd"
	runner := stubs(exited(0), exited(33))

	_, err := harness.Run(t.Context(), req, runner, harness.IO{})
	require.NoError(t, err)

	emulator := runner.CallsFor(qemu.ProcessName)
	require.Len(t, emulator, 1)
	assert.Equal(t, []string{"/usr/share/OVMF/OVMF_CODE.fd"},
		qemu.ArgumentValues(emulator[0].Args, "bios"))
}

func TestRunRelativePaths(t *testing.T) {
	t.Chdir(t.TempDir())

	req := harness.Request{
		KernelPath: "kernel.bin",
		Platform:   sys.PlatformLinux,
	}
	runner := stubs(exited(0), exited(33))

	_, err := harness.Run(t.Context(), req, runner, harness.IO{})
	require.NoError(t, err)

	builder := runner.CallsFor(diskimage.ProcessName)
	require.Len(t, builder, 1)
	assert.True(t, filepath.IsAbs(builder[0].Dir))
	assert.True(t, filepath.IsAbs(builder[0].Args[len(builder[0].Args)-1]))
	assert.True(t, filepath.IsAbs(builder[0].Args[len(builder[0].Args)-2]))
}

func TestRunNoKernel(t *testing.T) {
	runner := stubs(exited(0), exited(33))

	verdict, err := harness.Run(t.Context(), harness.Request{}, runner, harness.IO{})

	require.ErrorIs(t, err, harness.ErrNoKernel)
	assert.Equal(t, harness.Failure, verdict)
	assert.Empty(t, runner.Calls())
}

func TestRunIO(t *testing.T) {
	var stdin, stdout, stderr bytes.Buffer

	runner := stubs(
		proc.Stub{Stdout: "building\n"},
		proc.Stub{Result: proc.Result{ExitCode: 33}, Stdout: "booted\n"},
	)

	_, err := harness.Run(
		t.Context(),
		newRequest(t, sys.ProfileDebug),
		runner,
		harness.IO{Stdin: &stdin, Stdout: &stdout, Stderr: &stderr},
	)
	require.NoError(t, err)

	assert.Equal(t, "building\nbooted\n", stdout.String())

	emulator := runner.CallsFor(qemu.ProcessName)
	require.Len(t, emulator, 1)
	assert.Same(t, &stdin, emulator[0].Stdin)
	assert.Same(t, &stderr, emulator[0].Stderr)
}

func TestRunTimeout(t *testing.T) {
	req := newRequest(t, sys.ProfileDebug)
	req.Timeout = 50 * time.Millisecond

	var builderDeadline bool

	runner := proc.RunnerFunc(func(ctx context.Context, cmd proc.Command) (proc.Result, error) {
		if cmd.Name == diskimage.ProcessName {
			_, builderDeadline = ctx.Deadline()
			return proc.Result{}, nil
		}

		<-ctx.Done()

		return proc.Result{ExitCode: -1, State: "signal: terminated"}, ctx.Err()
	})

	verdict, err := harness.Run(t.Context(), req, runner, harness.IO{})

	assert.False(t, builderDeadline, "builder must not be bounded")
	assert.Equal(t, harness.Failure, verdict)
	require.ErrorIs(t, err, harness.ErrTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	runner := proc.RunnerFunc(func(ctx context.Context, cmd proc.Command) (proc.Result, error) {
		if cmd.Name == diskimage.ProcessName {
			return proc.Result{}, nil
		}

		cancel()
		<-ctx.Done()

		return proc.Result{ExitCode: -1}, ctx.Err()
	})

	verdict, err := harness.Run(ctx, newRequest(t, sys.ProfileDebug), runner, harness.IO{})

	assert.Equal(t, harness.Failure, verdict)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, harness.ErrTimeout)
}
