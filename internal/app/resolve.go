package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/aduh95/corepack/internal/core"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	dir, err := requestDir(req.Dir)
	if err != nil {
		return ResolveResult{}, err
	}

	resolver := core.NewResolver(s.Manifests, s.LocalEnv)
	resolution, err := resolver.Resolve(ctx, dir)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{Resolution: resolution}, nil
}

// requestDir validates and absolutizes the directory every request
// starts from. The upward walk needs an absolute path to terminate at
// the filesystem root.
func requestDir(dir string) (string, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("working directory is required")
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to resolve %s", trimmed)).
			WithCause(err)
	}
	return abs, nil
}
