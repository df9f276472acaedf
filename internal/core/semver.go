package core

import (
	"github.com/Masterminds/semver/v3"
)

// validExactVersion reports whether value is a full major.minor.patch
// semantic version, optionally carrying prerelease or build metadata.
// Leading "v" prefixes and partial versions are rejected; pins must be
// concrete.
func validExactVersion(value string) bool {
	_, err := semver.StrictNewVersion(value)
	return err == nil
}

// validRange reports whether value parses as a version constraint, such
// as "8.x", "^2.1.0", ">=1.2 <2", an exact version, or the wildcard.
func validRange(value string) bool {
	_, err := semver.NewConstraint(value)
	return err == nil
}

// satisfiesRange reports whether version satisfies the rng constraint.
// Build metadata on the version is tolerated. Inputs that do not parse
// never satisfy anything.
func satisfiesRange(version string, rng string) bool {
	constraint, err := semver.NewConstraint(rng)
	if err != nil {
		return false
	}
	parsed, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return constraint.Check(parsed)
}
