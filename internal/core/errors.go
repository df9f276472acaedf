package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/aduh95/corepack/internal/types"
)

// Error constructors for every way a declaration can be rejected. The
// codes map onto CLI exit codes, so changing one here changes the
// command's contract.

func errInvalidSpecType(source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid package manager specification in %s; expected a string", source))
}

func errMissingVersion(raw string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("no version specified for %s in %s", raw, source))
}

func errInvalidVersion(raw string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid package manager specification %s in %s; expected an exact semver version", raw, source))
}

func errUnsupportedManager(raw string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unsupported package manager specification (%s)", raw))
}

func errUnsafeCustomURL(raw string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodePermissionDenied).
		WithMsg(fmt.Sprintf("illegal use of URL for known package manager (%s); set COREPACK_ENABLE_UNSAFE_CUSTOM_URLS=1 to allow it", raw))
}

func errInvalidDevEngines(source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("devEngines.packageManager in %s must be an object with name and version", source))
}

func errInvalidDevEnginesName(source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("devEngines.packageManager in %s must declare a bare manager name without a version", source))
}

func errMultiplePackageManagers(source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("multiple package managers in devEngines.packageManager of %s are not supported", source))
}

func errMissingVersionConstraint(name string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("missing version constraint for %s in devEngines.packageManager of %s", name, source))
}

func errInvalidVersionConstraint(constraint string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid version constraint (%s) in devEngines.packageManager of %s", constraint, source))
}

func errOverrideConstraintMismatch(key string, value string, constraint string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s=%s does not satisfy the devEngines.packageManager constraint (%s) of %s", key, value, constraint, source))
}

func errDeclarationNameMismatch(legacyName string, declaredName string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("packageManager names %s while devEngines.packageManager declares %s in %s", legacyName, declaredName, source))
}

func errDeclarationVersionMismatch(legacy string, constraint string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("packageManager (%s) does not satisfy the devEngines.packageManager constraint (%s) of %s", legacy, constraint, source))
}

func errPinnedNameMismatch(pinned string, declared string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("refusing to pin %s: %s declares %s as its package manager", pinned, source, declared))
}

func errPinnedConstraintMismatch(locator types.Locator, constraint string, source string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("refusing to pin %s@%s: it does not satisfy the devEngines.packageManager constraint (%s) of %s", locator.Name, locator.Reference, constraint, source))
}
