// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// serialLog copies everything written to its pipe into a log file and the
// original stdout.
//
// QEMU gets the write end of an [os.Pipe] as stdout, so it writes to a real
// file descriptor and the output is passed through as it arrives.
type serialLog struct {
	path      string
	file      *os.File
	writePipe *os.File
	group     errgroup.Group
}

func startSerialLog(path string, stdout io.Writer) (*serialLog, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &SerialLogError{Path: path, Err: err}
	}

	readPipe, writePipe, err := os.Pipe()
	if err != nil {
		_ = file.Close()
		return nil, &SerialLogError{Path: path, Err: fmt.Errorf("pipe: %w", err)}
	}

	dst := io.Writer(file)
	if stdout != nil {
		dst = io.MultiWriter(stdout, file)
	}

	log := &serialLog{
		path:      path,
		file:      file,
		writePipe: writePipe,
	}

	log.group.Go(func() error {
		defer readPipe.Close()

		_, err := io.Copy(dst, readPipe)
		if err != nil {
			// Keep draining, so QEMU never blocks on a full pipe.
			_, _ = io.Copy(io.Discard, readPipe)
			return fmt.Errorf("copy: %w", err)
		}

		return nil
	})

	return log, nil
}

// Writer returns the writer to pass to QEMU as stdout.
func (l *serialLog) Writer() io.Writer {
	return l.writePipe
}

// Close must be called once QEMU exited. It waits for all output to be copied
// and closes the log file.
func (l *serialLog) Close() error {
	// The copy terminates once all write ends are closed. QEMU's end is
	// closed already, as it exited.
	pipeErr := l.writePipe.Close()
	copyErr := l.group.Wait()
	fileErr := l.file.Close()

	err := errors.Join(copyErr, pipeErr, fileErr)
	if err != nil {
		return &SerialLogError{Path: l.path, Err: err}
	}

	return nil
}
