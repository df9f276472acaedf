package ports

// ManifestEditorPort performs targeted edits of a manifest's
// packageManager field while leaving every other byte of the file
// alone.
type ManifestEditorPort interface {
	// ReadSpec returns the current field value, or "" when the field or
	// the file itself is absent.
	ReadSpec(path string) (string, error)

	// SetSpec pins spec into the manifest at path, creating the file
	// when missing, and returns the previous value ("" when none).
	SetSpec(path string, spec string) (previous string, err error)
}

// EnvFileEditorPort rewrites the value of a single KEY=value line in an
// override file.
type EnvFileEditorPort interface {
	SetValue(path string, key string, value string) error
}
