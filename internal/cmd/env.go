// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "UEFIRUN"
	defaultConfigFile = ".uefirun.yaml"
	qemuArgsKey       = "qemu-args"
)

// Flags that are not read from the environment or the config file.
var cliOnlyFlags = []string{
	configFlag,
	printConfigFlag,
	"help",
	"version",
}

// newViper returns a [viper.Viper] that reads UEFIRUN_* environment variables
// and the given config file. Keys are the long flag names.
//
// A missing config file is ignored unless it was given explicitly.
func newViper(configFile string, explicit bool) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if configFile == "" {
		return v, nil
	}

	v.SetConfigFile(configFile)

	err := v.ReadInConfig()
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}

		return nil, fmt.Errorf("read config file %s: %w", configFile, err)
	}

	return v, nil
}

// applyViper sets all flags that were not given on the command line from the
// environment or the config file, in that order of precedence. It returns the
// names of the flags it set.
func applyViper(v *viper.Viper, flagSet *pflag.FlagSet) ([]string, error) {
	var (
		applied []string
		errs    []error
	)

	flagSet.VisitAll(func(flag *pflag.Flag) {
		if slices.Contains(cliOnlyFlags, flag.Name) {
			return
		}

		err := v.BindEnv(flag.Name)
		if err != nil {
			errs = append(errs, err)
			return
		}

		if flag.Changed || !v.IsSet(flag.Name) {
			return
		}

		err = flagSet.Set(flag.Name, v.GetString(flag.Name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", flag.Name, err))
			return
		}

		applied = append(applied, flag.Name)
	})

	return applied, errors.Join(errs...)
}

// logAppliedFlags logs the flags set by [applyViper]. Must be called once
// logging is set up, as debug output might be enabled by one of them.
func logAppliedFlags(flagSet *pflag.FlagSet, applied []string) {
	for _, name := range applied {
		slog.Debug("Flag from environment or config file",
			slog.String("flag", name),
			slog.String("value", flagSet.Lookup(name).Value.String()))
	}
}

// qemuArgs returns additional QEMU arguments from the environment variable
// UEFIRUN_QEMU_ARGS or the config file key "qemu-args".
//
// A string value is split with shell quoting rules. A list is taken as is.
func qemuArgs(v *viper.Viper) ([]string, error) {
	err := v.BindEnv(qemuArgsKey)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	switch value := v.Get(qemuArgsKey).(type) {
	case nil:
		return nil, nil
	case string:
		args, err := shellquote.Split(value)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", qemuArgsKey, err)
		}

		return args, nil
	default:
		return v.GetStringSlice(qemuArgsKey), nil
	}
}
