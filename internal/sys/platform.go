// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "runtime"

// Platform is the host platform branch the disk image builder is compiled
// for. Every platform tag resolves to exactly one of the two branches.
type Platform int

const (
	// PlatformOther is any host that is not Linux.
	PlatformOther Platform = iota
	// PlatformLinux is a Linux host.
	PlatformLinux
)

// Target triples the disk image builder is compiled for.
const (
	LinuxTargetTriple = "x86_64-unknown-linux-gnu"
	OtherTargetTriple = "x86_64-apple-darwin"
)

const linuxTag = "linux"

// ParsePlatform maps a platform tag, like [runtime.GOOS] values, to its
// [Platform] branch. Only "linux" selects [PlatformLinux].
func ParsePlatform(tag string) Platform {
	if tag == linuxTag {
		return PlatformLinux
	}

	return PlatformOther
}

// HostPlatform returns the [Platform] of the running host.
func HostPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

// TargetTriple returns the target triple the disk image builder is run with.
func (p Platform) TargetTriple() string {
	if p == PlatformLinux {
		return LinuxTargetTriple
	}

	return OtherTargetTriple
}

// String implements [fmt.Stringer].
func (p Platform) String() string {
	if p == PlatformLinux {
		return linuxTag
	}

	return "other"
}

// Set implements [pflag.Value].
func (p *Platform) Set(s string) error {
	*p = ParsePlatform(s)
	return nil
}

// Type implements [pflag.Value].
func (*Platform) Type() string {
	return "platform"
}

// MarshalText implements [encoding.TextMarshaler].
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Platform) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
