package policies

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed managers.yaml
var managersYAML []byte

// KnownManager describes one entry of the supported manager set.
type KnownManager struct {
	Name string   `yaml:"name"`
	Bins []string `yaml:"bins"`
}

type managerCatalog struct {
	Managers []KnownManager `yaml:"managers"`
}

var knownManagers = mustLoadCatalog()

func mustLoadCatalog() []KnownManager {
	var catalog managerCatalog
	if err := yaml.Unmarshal(managersYAML, &catalog); err != nil {
		panic(fmt.Sprintf("embedded manager catalog is invalid: %v", err))
	}
	return catalog.Managers
}

// KnownManagers returns the supported manager set in catalog order.
func KnownManagers() []KnownManager {
	return append([]KnownManager(nil), knownManagers...)
}

// IsSupported reports whether name is a manager this tool can pin
// without an explicit URL opt-in.
func IsSupported(name string) bool {
	for _, manager := range knownManagers {
		if manager.Name == name {
			return true
		}
	}
	return false
}
