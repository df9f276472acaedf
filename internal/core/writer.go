package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/aduh95/corepack/internal/ports"
	"github.com/aduh95/corepack/internal/shared"
	"github.com/aduh95/corepack/internal/types"
)

// Writer pins an already-prepared manager build into whichever file
// owns the current declaration: the manifest's packageManager field, or
// the override file line when that is where the version came from.
type Writer struct {
	Resolver Resolver
	Manifest ports.ManifestEditorPort
	EnvFile  ports.EnvFileEditorPort
}

func NewWriter(resolver Resolver, manifest ports.ManifestEditorPort, envFile ports.EnvFileEditorPort) Writer {
	return Writer{
		Resolver: resolver,
		Manifest: manifest,
		EnvFile:  envFile,
	}
}

// Persist resolves the project under cwd once and updates the file that
// owns its declaration. The resolution both locates the target and
// supplies the devEngines constraint the pinned build must satisfy;
// nothing is written when that check fails.
func (w Writer) Persist(ctx context.Context, cwd string, info types.PreparedPackageManagerInfo) (types.PersistResult, error) {
	if w.Manifest == nil || w.EnvFile == nil {
		return types.PersistResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("writer requires manifest and env file editor ports")
	}
	assert.NotEmpty(ctx, info.Locator.Name, "prepared locator name must be set")
	assert.NotEmpty(ctx, info.Locator.Reference, "prepared locator reference must be set")

	resolution, err := w.Resolver.Resolve(ctx, cwd)
	if err != nil {
		return types.PersistResult{}, err
	}

	found := resolution.Found
	if found != nil && found.Constraint != "" {
		if info.Locator.Name != found.Spec.Name {
			return types.PersistResult{}, errPinnedNameMismatch(info.Locator.Name, found.Spec.Name, found.Target)
		}
		if !satisfiesRange(info.Locator.Reference, found.Constraint) {
			return types.PersistResult{}, errPinnedConstraintMismatch(info.Locator, found.Constraint, found.Target)
		}
	}

	if found != nil && found.EnvFilePath != "" {
		previous, err := w.Manifest.ReadSpec(found.Target)
		if err != nil {
			return types.PersistResult{}, err
		}
		key := shared.EnvKeyForManager(info.Locator.Name)
		if err := w.EnvFile.SetValue(found.EnvFilePath, key, info.Locator.Reference); err != nil {
			return types.PersistResult{}, err
		}
		log.Ctx(ctx).Debug().Str("file", found.EnvFilePath).Str("key", key).Msg("override file updated")
		return types.PersistResult{
			PreviousSpec: previousOrUnknown(previous),
			Target:       found.EnvFilePath,
		}, nil
	}

	target := resolution.Target()
	spec := types.Descriptor{Name: info.Locator.Name, Range: info.Locator.Reference}
	previous, err := w.Manifest.SetSpec(target, spec.String())
	if err != nil {
		return types.PersistResult{}, err
	}
	log.Ctx(ctx).Debug().Str("file", target).Str("spec", spec.String()).Msg("manifest updated")
	return types.PersistResult{
		PreviousSpec: previousOrUnknown(previous),
		Target:       target,
	}, nil
}

func previousOrUnknown(previous string) string {
	if previous == "" {
		return types.UnknownSpec
	}
	return previous
}
