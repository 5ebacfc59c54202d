// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strings"
)

// Argument is a QEMU option with or without value, like "-no-reboot" or
// "-serial stdio".
//
// Options that must not be given twice are marked unique. Two unique
// arguments with the same name collide, regardless of their values.
type Argument struct {
	name       string
	value      string
	repeatable bool
}

// UniqueArg returns a new [Argument] that can be present only once in an
// argument list. Multiple values are joined with ",", the QEMU sub-option
// separator.
func UniqueArg(name string, value ...string) Argument {
	return Argument{
		name:  name,
		value: strings.Join(value, ","),
	}
}

// RepeatableArg is like [UniqueArg], but the returned [Argument] may be
// present multiple times with different values, like "-device".
func RepeatableArg(name string, value ...string) Argument {
	arg := UniqueArg(name, value...)
	arg.repeatable = true

	return arg
}

// Name returns the name of the [Argument] without leading dash.
func (a Argument) Name() string {
	return a.name
}

// Value returns the value of the [Argument]. It is empty for flags.
func (a Argument) Value() string {
	return a.value
}

// Repeatable returns true if the [Argument] may be present multiple times.
func (a Argument) Repeatable() bool {
	return a.repeatable
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	if a.value == "" {
		return "-" + a.name
	}

	return "-" + a.name + " " + a.value
}

// Collides returns true if both [Argument]s can not be used together.
//
// Unique arguments collide by name. Repeatable arguments collide only if they
// are identical.
func (a Argument) Collides(other Argument) bool {
	if a.name != other.name {
		return false
	}

	if a.repeatable && other.repeatable {
		return a.value == other.value
	}

	return true
}

// BuildArgumentStrings compiles the [Argument]s into a slice of strings which
// can be used as process arguments.
//
// It returns an error wrapping [ErrArgumentCollision] if any two arguments
// collide.
func BuildArgumentStrings(args []Argument) ([]string, error) {
	argStrings := make([]string, 0, 2*len(args))

	for idx, arg := range args {
		if i := slices.IndexFunc(args[:idx], arg.Collides); i != -1 {
			return nil, fmt.Errorf("%w: %s, %s",
				ErrArgumentCollision, args[i], arg)
		}

		argStrings = append(argStrings, "-"+arg.name)

		if arg.value != "" {
			argStrings = append(argStrings, arg.value)
		}
	}

	return argStrings, nil
}
