package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/aduh95/corepack/internal/core"
	"github.com/aduh95/corepack/internal/types"
)

// Use pins an exact manager version for the project owning req.Dir.
// req.Spec must name a concrete version (or a URL for custom
// managers); ranges and tags are rejected before anything is touched.
func (s Service) Use(ctx context.Context, req UseRequest) (UseResult, error) {
	dir, err := requestDir(req.Dir)
	if err != nil {
		return UseResult{}, err
	}
	raw := strings.TrimSpace(req.Spec)
	if raw == "" {
		return UseResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package manager specification is required")
	}

	descriptor, err := core.ParseSpec(raw, "the command line", core.ParseSpecOptions{EnforceExactVersion: true})
	if err != nil {
		return UseResult{}, err
	}

	info := types.PreparedPackageManagerInfo{
		Locator: types.Locator{Name: descriptor.Name, Reference: descriptor.Range},
	}
	writer := core.NewWriter(core.NewResolver(s.Manifests, s.LocalEnv), s.ManifestEditor, s.EnvEditor)
	result, err := writer.Persist(ctx, dir, info)
	if err != nil {
		return UseResult{}, err
	}
	return UseResult{
		Pinned:   descriptor.String(),
		Previous: result.PreviousSpec,
		Target:   result.Target,
	}, nil
}
