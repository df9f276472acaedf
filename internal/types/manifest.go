package types

import (
	"bytes"
	"encoding/json"
)

// Manifest is the subset of package.json fields the resolver reads.
// The declarations keep their raw JSON so type errors can be reported
// against the manifest that carried them instead of failing the decode
// of the whole file.
type Manifest struct {
	PackageManager json.RawMessage `json:"packageManager,omitempty"`
	DevEngines     DevEngines      `json:"devEngines,omitempty"`
}

type DevEngines struct {
	PackageManager json.RawMessage `json:"packageManager,omitempty"`
}

// UnmarshalJSON treats a devEngines value that is not an object as an
// absent one instead of failing the manifest decode. Only the
// packageManager declaration inside it is validated further.
func (d *DevEngines) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*d = DevEngines{}
		return nil
	}
	type plain DevEngines
	var decoded plain
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return err
	}
	*d = DevEngines(decoded)
	return nil
}

// DevEngineDeclaration is the structured form of devEngines.packageManager.
// Version holds a constraint, not necessarily an exact version.
type DevEngineDeclaration struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ManifestFile pairs a decoded manifest with the path it was read from.
type ManifestFile struct {
	Path     string
	Manifest Manifest
}

// HasPackageManager reports whether the legacy field carries a value.
// A JSON null counts as absent, matching how a missing field reads.
func (m Manifest) HasPackageManager() bool {
	return rawPresent(m.PackageManager)
}

func (m Manifest) HasDevEngines() bool {
	return rawPresent(m.DevEngines.PackageManager)
}

func rawPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
