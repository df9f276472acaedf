package app

import (
	"github.com/aduh95/corepack/internal/adapters"
	"github.com/aduh95/corepack/internal/ports"
)

type Service struct {
	Manifests      ports.ManifestPort
	LocalEnv       ports.LocalEnvPort
	ManifestEditor ports.ManifestEditorPort
	EnvEditor      ports.EnvFileEditorPort
}

func NewService() Service {
	return Service{
		Manifests:      adapters.NewManifestFileAdapter(),
		LocalEnv:       adapters.NewLocalEnvAdapter(),
		ManifestEditor: adapters.NewManifestEditorAdapter(),
		EnvEditor:      adapters.NewEnvFileEditorAdapter(),
	}
}
