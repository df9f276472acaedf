package adapters

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/subosito/gotenv"

	"github.com/aduh95/corepack/internal/types"
)

// DefaultEnvFileName is the override file read next to a project
// manifest.
const DefaultEnvFileName = ".corepack.env"

// envFileVar renames the override file; the exact value "0" disables
// reading it entirely.
const envFileVar = "COREPACK_ENV_FILE"

type LocalEnvAdapter struct{}

func NewLocalEnvAdapter() LocalEnvAdapter {
	return LocalEnvAdapter{}
}

// Load merges dir's override file over the ambient process
// environment. Keys from the file win. FromFile records which keys the
// file itself supplied, so the resolver can tell a file-backed override
// from an ambient one; a missing or disabled file leaves it empty and
// FilePath unset.
func (a LocalEnvAdapter) Load(dir string) (types.LocalEnv, error) {
	env := types.LocalEnv{Values: ambientEnv(), FromFile: map[string]string{}}

	name := DefaultEnvFileName
	switch value := os.Getenv(envFileVar); value {
	case "":
	case "0":
		return env, nil
	default:
		name = value
	}

	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return env, nil
	}
	if err != nil {
		return types.LocalEnv{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}

	for key, value := range gotenv.Parse(bytes.NewReader(data)) {
		env.Values[key] = value
		env.FromFile[key] = value
	}
	env.FilePath = path
	return env, nil
}

func ambientEnv() map[string]string {
	values := map[string]string{}
	for _, entry := range os.Environ() {
		if key, value, ok := strings.Cut(entry, "="); ok {
			values[key] = value
		}
	}
	return values
}
