package roomsim

import (
	"fmt"

	"github.com/blang/semver"
)

const versionDevelopment = "development"

// Overridden at link time with -ldflags "-X ...roomsim.ROOMSIM_VERSION=v0.1.0"
var ROOMSIM_VERSION = versionDevelopment

func parseVersion(v string) (semver.Version, error) {
	res, err := semver.ParseTolerant(v)
	if err != nil {
		return res, fmt.Errorf("Invalid version '%s': %s", v, err)
	}
	return res, nil
}

// sameSeries reports whether a config file written for file can be read
// by program: same major, or same minor while still in 0.x.
func sameSeries(program, file semver.Version) bool {
	if program.Major != file.Major {
		return false
	}
	return program.Major != 0 || program.Minor == file.Minor
}

// CheckConfigVersion validates the version: field of a config file
// against the running program. An empty field is always accepted, a
// malformed one never is, even on development builds.
func CheckConfigVersion(fileVersion string) error {
	if len(fileVersion) == 0 || fileVersion == versionDevelopment {
		return nil
	}
	file, err := parseVersion(fileVersion)
	if err != nil {
		return err
	}
	if ROOMSIM_VERSION == versionDevelopment {
		return nil
	}
	program, err := parseVersion(ROOMSIM_VERSION)
	if err != nil {
		return err
	}
	if sameSeries(program, file) == false {
		return fmt.Errorf("Invalid version: file version (%s) is incompatible with roomsim version (%s)",
			fileVersion, ROOMSIM_VERSION)
	}
	return nil
}
