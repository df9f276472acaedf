package types

// Resolution is the outcome of locating a project's package manager
// declaration. Exactly one payload field is non-nil, and it is the one
// matching Type; consumers switch on Type and never probe the others.
type Resolution struct {
	Type      ResolutionType
	NoProject *NoProjectResolution
	NoSpec    *NoSpecResolution
	Found     *FoundResolution
}

// NoProjectResolution reports that no manifest exists in the starting
// directory or any of its ancestors. Target is the path where one would
// be created if a declaration were written now.
type NoProjectResolution struct {
	Target string
}

// NoSpecResolution reports a manifest that declares no package manager.
type NoSpecResolution struct {
	Target string
}

// FoundResolution carries the declaration adopted for a project.
// Constraint holds the devEngines version constraint when one applied.
// EnvFilePath is set only when the local env file supplied the version,
// which tells the writer to update that file instead of the manifest.
type FoundResolution struct {
	Target      string
	Spec        Descriptor
	Constraint  string
	EnvFilePath string
}

// Target returns the file path the resolution is anchored to, for any
// variant.
func (r Resolution) Target() string {
	switch r.Type {
	case ResolutionTypeNoProject:
		return r.NoProject.Target
	case ResolutionTypeNoSpec:
		return r.NoSpec.Target
	case ResolutionTypeFound:
		return r.Found.Target
	}
	return ""
}

// PersistResult reports a completed pin update.
type PersistResult struct {
	PreviousSpec string
	Target       string
}
