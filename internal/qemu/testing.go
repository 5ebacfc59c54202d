// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "github.com/stretchr/testify/assert"

// ArgumentValueAssertionFunc returns an [assert.ComparisonAssertionFunc] that
// can be used to assert the values of all Arguments with the given name in a
// list of QEMU argument strings.
func ArgumentValueAssertionFunc(
	name string,
	assertion assert.ComparisonAssertionFunc,
) assert.ComparisonAssertionFunc {
	return func(t assert.TestingT, arg1, arg2 any, arg3 ...any) bool {
		args, ok := arg1.([]string)
		if !assert.True(t, ok, "first argument should be []string") {
			return false
		}

		return assertion(t, ArgumentValues(args, name), arg2, arg3...)
	}
}

// ArgumentValues returns the values of all options with the given name in
// a list of QEMU argument strings. Options are expected as "-name value"
// pairs. Flags without value are skipped.
func ArgumentValues(args []string, name string) []string {
	var values []string

	for idx := 0; idx < len(args)-1; idx++ {
		if args[idx] == "-"+name && len(args[idx+1]) > 0 && args[idx+1][0] != '-' {
			values = append(values, args[idx+1])
			idx++
		}
	}

	return values
}
