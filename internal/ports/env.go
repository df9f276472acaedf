package ports

import "github.com/aduh95/corepack/internal/types"

// LocalEnvPort merges a directory's override file over the ambient
// process environment.
type LocalEnvPort interface {
	Load(dir string) (types.LocalEnv, error)
}
