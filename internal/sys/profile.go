// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "fmt"

// Profile is the build profile the loader was built with. It selects the
// output directory and the emulator's timing and SMP setup.
type Profile int

const (
	// ProfileDebug is the unoptimized development build.
	ProfileDebug Profile = iota
	// ProfileRelease is the optimized build. Runs are deterministic and use
	// multiple CPUs.
	ProfileRelease
)

const (
	debugName   = "debug"
	releaseName = "release"
)

// ParseProfile returns the [Profile] with the given name.
func ParseProfile(name string) (Profile, error) {
	switch name {
	case debugName:
		return ProfileDebug, nil
	case releaseName:
		return ProfileRelease, nil
	default:
		return ProfileDebug, fmt.Errorf("%w: %q", ErrProfileNotSupported, name)
	}
}

// String implements [fmt.Stringer].
func (p Profile) String() string {
	switch p {
	case ProfileDebug:
		return debugName
	case ProfileRelease:
		return releaseName
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// Set implements [pflag.Value].
func (p *Profile) Set(s string) error {
	profile, err := ParseProfile(s)
	if err != nil {
		return err
	}

	*p = profile

	return nil
}

// Type implements [pflag.Value].
func (*Profile) Type() string {
	return "profile"
}

// MarshalText implements [encoding.TextMarshaler].
func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Profile) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
