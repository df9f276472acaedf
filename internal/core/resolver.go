package core

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/aduh95/corepack/internal/ports"
	"github.com/aduh95/corepack/internal/shared"
	"github.com/aduh95/corepack/internal/types"
)

type Resolver struct {
	Manifests ports.ManifestPort
	LocalEnv  ports.LocalEnvPort
}

func NewResolver(manifests ports.ManifestPort, localEnv ports.LocalEnvPort) Resolver {
	return Resolver{
		Manifests: manifests,
		LocalEnv:  localEnv,
	}
}

// selection is the manifest candidate the walk currently favors,
// together with the local environment of its directory.
type selection struct {
	file types.ManifestFile
	env  types.LocalEnv
}

// Resolve walks from startDir toward the filesystem root until it finds
// the manifest that owns the project's package manager declaration,
// then applies the source precedence across the structured declaration,
// the legacy field, and the local environment override.
//
// A manifest without the legacy field does not stop the walk: an outer
// manifest that carries one supersedes it, and the outermost candidate
// wins when none does. Directories anywhere inside a node_modules tree
// never contribute candidates.
func (r Resolver) Resolve(ctx context.Context, startDir string) (types.Resolution, error) {
	if r.Manifests == nil || r.LocalEnv == nil {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires manifest and local env ports")
	}

	start := filepath.Clean(startDir)
	var selected *selection

	next := start
	curr := ""
	for next != curr && (selected == nil || !selected.file.Manifest.HasPackageManager()) {
		curr = next
		next = filepath.Dir(curr)

		if insideNodeModules(curr) {
			continue
		}

		file, found, err := r.Manifests.Load(curr)
		if err != nil {
			return types.Resolution{}, err
		}
		if !found {
			continue
		}
		env, err := r.LocalEnv.Load(curr)
		if err != nil {
			return types.Resolution{}, err
		}
		selected = &selection{file: file, env: env}
	}

	if selected == nil {
		log.Ctx(ctx).Debug().Str("dir", start).Msg("no manifest found")
		return types.Resolution{
			Type:      types.ResolutionTypeNoProject,
			NoProject: &types.NoProjectResolution{Target: filepath.Join(start, types.ManifestFileName)},
		}, nil
	}

	log.Ctx(ctx).Debug().Str("manifest", selected.file.Path).Msg("manifest adopted")
	return r.applyPrecedence(ctx, *selected)
}

// applyPrecedence turns the adopted manifest into a resolution. The
// structured devEngines declaration is consulted first; when present,
// the local env override and then the legacy field may narrow it, and
// both must agree with its constraint.
func (r Resolver) applyPrecedence(ctx context.Context, sel selection) (types.Resolution, error) {
	manifest := sel.file.Manifest
	path := sel.file.Path

	if !manifest.HasDevEngines() {
		if !manifest.HasPackageManager() {
			return types.Resolution{
				Type:   types.ResolutionTypeNoSpec,
				NoSpec: &types.NoSpecResolution{Target: path},
			}, nil
		}
		spec, err := ParseRawSpec(manifest.PackageManager, path, ParseSpecOptions{})
		if err != nil {
			return types.Resolution{}, err
		}
		return foundResolution(path, spec, "", ""), nil
	}

	declaration, err := decodeDevEngines(manifest.DevEngines.PackageManager, path)
	if err != nil {
		return types.Resolution{}, err
	}

	envKey := shared.EnvKeyForManager(declaration.Name)
	if value, ok := sel.env.Lookup(envKey); ok {
		if !satisfiesRange(value, declaration.Version) {
			return types.Resolution{}, errOverrideConstraintMismatch(envKey, value, declaration.Version, path)
		}
		envFilePath := ""
		if sel.env.FileDefined(envKey) {
			envFilePath = sel.env.FilePath
		}
		log.Ctx(ctx).Debug().Str("key", envKey).Str("value", value).Msg("local env override adopted")
		spec := types.Descriptor{Name: declaration.Name, Range: value}
		return foundResolution(path, spec, declaration.Version, envFilePath), nil
	}

	if manifest.HasPackageManager() {
		legacyRaw, err := specString(manifest.PackageManager, path)
		if err != nil {
			return types.Resolution{}, err
		}
		legacy, err := ParseSpec(legacyRaw, path, ParseSpecOptions{})
		if err != nil {
			return types.Resolution{}, err
		}
		if legacy.Name != declaration.Name {
			return types.Resolution{}, errDeclarationNameMismatch(legacy.Name, declaration.Name, path)
		}
		if !satisfiesRange(legacy.Range, declaration.Version) {
			return types.Resolution{}, errDeclarationVersionMismatch(legacyRaw, declaration.Version, path)
		}
		// The parsed descriptor keeps the range verbatim, so a pinned
		// hash suffix survives into the resolution.
		return foundResolution(path, legacy, declaration.Version, ""), nil
	}

	spec := types.Descriptor{Name: declaration.Name, Range: declaration.Version}
	return foundResolution(path, spec, declaration.Version, ""), nil
}

// decodeDevEngines validates the structured declaration. The field must
// be a single object; arrays of managers are rejected outright rather
// than silently taking the first entry.
func decodeDevEngines(raw json.RawMessage, source string) (types.DevEngineDeclaration, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return types.DevEngineDeclaration{}, errMultiplePackageManagers(source)
	}
	var declaration types.DevEngineDeclaration
	if err := json.Unmarshal(raw, &declaration); err != nil {
		return types.DevEngineDeclaration{}, errInvalidDevEngines(source)
	}
	if declaration.Name == "" || strings.Contains(declaration.Name, "@") {
		return types.DevEngineDeclaration{}, errInvalidDevEnginesName(source)
	}
	if declaration.Version == "" {
		return types.DevEngineDeclaration{}, errMissingVersionConstraint(declaration.Name, source)
	}
	if !validRange(declaration.Version) {
		return types.DevEngineDeclaration{}, errInvalidVersionConstraint(declaration.Version, source)
	}
	return declaration, nil
}

// insideNodeModules reports whether dir sits anywhere inside an
// installed dependency tree. Manifests shipped by dependencies must
// never shadow the project's own declaration.
func insideNodeModules(dir string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(dir), "/") {
		if segment == "node_modules" {
			return true
		}
	}
	return false
}

func foundResolution(target string, spec types.Descriptor, constraint string, envFilePath string) types.Resolution {
	return types.Resolution{
		Type: types.ResolutionTypeFound,
		Found: &types.FoundResolution{
			Target:      target,
			Spec:        spec,
			Constraint:  constraint,
			EnvFilePath: envFilePath,
		},
	}
}
