// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const pkg = "github.com/aibor/uefirun/cmd/uefirun"

var env map[string]string

func init() {
	env = make(map[string]string)

	gobin, exists := os.LookupEnv("GOBIN")
	if !exists {
		gobin = "./gobin"
	}

	if gobin != "" {
		p, err := filepath.Abs(gobin)
		if err == nil {
			gobin = p
		}
	}

	env["GOBIN"] = gobin
}

func binPath() string {
	return filepath.Join(env["GOBIN"], "uefirun")
}

// Install uefirun to gobin directory, if sources changed.
func Install() error {
	changed, err := target.Dir(binPath(), "cmd", "internal", "go.mod")
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	return sh.RunWith(env, "go", "install", pkg)
}

// Run unit tests with race detector and coverage.
func Test() error {
	return sh.RunV("go", "test", "-race", "-cover", "-coverprofile", "/tmp/cover.out", "./...")
}

// Boot the given kernel with the installed uefirun. Set profile to "debug"
// or "release".
func Boot(kernel, profile string) error {
	mg.Deps(Install)

	args := []string{"--debug", "--profile", profile, kernel}
	fmt.Printf("uefirun args: %s\n", args)

	return sh.RunWithV(env, binPath(), args...)
}

// Remove volatile files.
func Clean() error {
	return sh.Rm(env["GOBIN"])
}
