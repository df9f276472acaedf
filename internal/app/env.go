package app

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/aduh95/corepack/internal/adapters"
	"github.com/aduh95/corepack/internal/core"
	"github.com/aduh95/corepack/internal/policies"
	"github.com/aduh95/corepack/internal/shared"
	"github.com/aduh95/corepack/internal/types"
)

// Env reports the override surface of the project owning req.Dir: the
// manifest that anchors it, the override file if one exists, and the
// value every manager's override key currently carries.
func (s Service) Env(ctx context.Context, req EnvRequest) (EnvResult, error) {
	dir, err := requestDir(req.Dir)
	if err != nil {
		return EnvResult{}, err
	}

	resolver := core.NewResolver(s.Manifests, s.LocalEnv)
	resolution, err := resolver.Resolve(ctx, dir)
	if err != nil {
		return EnvResult{}, err
	}

	projectDir := dir
	manifestPath := ""
	switch resolution.Type {
	case types.ResolutionTypeNoSpec, types.ResolutionTypeFound:
		manifestPath = resolution.Target()
		projectDir = filepath.Dir(manifestPath)
	}

	env, err := s.LocalEnv.Load(projectDir)
	if err != nil {
		return EnvResult{}, err
	}

	result := EnvResult{
		ProjectDir:    projectDir,
		ManifestPath:  manifestPath,
		EnvFilePath:   env.FilePath,
		InstallFolder: adapters.InstallFolder(),
	}

	covered := map[string]bool{}
	for _, manager := range policies.KnownManagers() {
		key := shared.EnvKeyForManager(manager.Name)
		covered[key] = true
		result.Entries = append(result.Entries, envEntry(env, manager.Name, manager.Bins, key))
	}

	// Override keys for managers outside the known set still matter:
	// custom managers declared through devEngines use them too.
	var extra []string
	for key := range env.Values {
		if covered[key] {
			continue
		}
		if _, ok := shared.NameFromEnvKey(key); ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		name, _ := shared.NameFromEnvKey(key)
		result.Entries = append(result.Entries, envEntry(env, name, nil, key))
	}
	return result, nil
}

func envEntry(env types.LocalEnv, manager string, bins []string, key string) EnvEntry {
	entry := EnvEntry{Manager: manager, Bins: bins, Key: key}
	if value, ok := env.Lookup(key); ok {
		entry.Value = value
		entry.Source = EnvSourceAmbient
		if env.FileDefined(key) {
			entry.Source = EnvSourceFile
		}
	}
	return entry
}
