package ports

import "github.com/aduh95/corepack/internal/types"

// ManifestPort loads project manifests during directory walks.
type ManifestPort interface {
	// Load reads and decodes dir/package.json. found is false when no
	// manifest exists there; a manifest that exists but is not a JSON
	// object is an error, never a skip.
	Load(dir string) (file types.ManifestFile, found bool, err error)
}
