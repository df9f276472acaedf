package types

type ResolutionType string

const (
	ResolutionTypeNoProject ResolutionType = "no-project"
	ResolutionTypeNoSpec    ResolutionType = "no-spec"
	ResolutionTypeFound     ResolutionType = "found"
)

// ManifestFileName is the basename every project declaration lives in.
const ManifestFileName = "package.json"

// WildcardRange selects any version of a package manager. It is what a
// bare manager name without a version part normalizes to.
const WildcardRange = "*"

// UnknownSpec is reported as the previous specification when a pin
// replaced nothing.
const UnknownSpec = "unknown"
