package adapters

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// homeFolderVar overrides where manager builds get cached.
const homeFolderVar = "COREPACK_HOME"

// InstallFolder returns the directory the download side caches manager
// builds under. Nothing here creates or inspects it; it only resolves
// the conventional location.
func InstallFolder() string {
	if value := os.Getenv(homeFolderVar); value != "" {
		return value
	}
	return filepath.Join(xdg.CacheHome, "node", "corepack")
}
