package app

import "github.com/aduh95/corepack/internal/types"

type ResolveRequest struct {
	Dir string
}

type ResolveResult struct {
	Resolution types.Resolution
}

type UseRequest struct {
	Dir  string
	Spec string
}

type UseResult struct {
	Pinned   string
	Previous string
	Target   string
}

type EnvRequest struct {
	Dir string
}

const (
	EnvSourceFile    = "file"
	EnvSourceAmbient = "environment"
)

// EnvEntry reports one manager's override key and where its current
// value comes from. Value and Source are empty when the key is unset.
type EnvEntry struct {
	Manager string
	Bins    []string
	Key     string
	Value   string
	Source  string
}

type EnvResult struct {
	ProjectDir    string
	ManifestPath  string
	EnvFilePath   string
	InstallFolder string
	Entries       []EnvEntry
}
