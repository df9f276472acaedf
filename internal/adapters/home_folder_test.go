package adapters

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInstallFolderHonorsOverride(t *testing.T) {
	t.Setenv("COREPACK_HOME", "/opt/toolchains/corepack")

	if diff := cmp.Diff("/opt/toolchains/corepack", InstallFolder()); diff != "" {
		t.Fatalf("unexpected install folder (-want +got):\n%s", diff)
	}
}

func TestInstallFolderDefaultsToCacheHome(t *testing.T) {
	t.Setenv("COREPACK_HOME", "")

	folder := InstallFolder()
	require.NotEmpty(t, folder)
	require.True(t, strings.HasSuffix(folder, filepath.Join("node", "corepack")))
}
