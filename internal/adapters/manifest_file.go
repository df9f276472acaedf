package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/aduh95/corepack/internal/types"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

// Load reads dir/package.json. A missing file reports found=false so
// the walk can continue; a file that exists but does not hold a JSON
// object is an error, because skipping it would silently resolve to an
// ancestor's declaration.
func (a ManifestFileAdapter) Load(dir string) (types.ManifestFile, bool, error) {
	path := filepath.Join(dir, types.ManifestFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.ManifestFile{}, false, nil
	}
	if err != nil {
		return types.ManifestFile{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}
	manifest, err := decodeManifest(data, path)
	if err != nil {
		return types.ManifestFile{}, false, err
	}
	return types.ManifestFile{Path: path, Manifest: manifest}, true, nil
}

func decodeManifest(data []byte, path string) (types.Manifest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return types.Manifest{}, errInvalidManifest(path, nil)
	}
	var manifest types.Manifest
	if err := json.Unmarshal(trimmed, &manifest); err != nil {
		return types.Manifest{}, errInvalidManifest(path, err)
	}
	return manifest, nil
}

func errInvalidManifest(path string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid package.json in %s", path))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}
