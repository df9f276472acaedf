package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aduh95/corepack/internal/types"
)

func writeManifest(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, types.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestManifestFileAdapterLoad(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		noFile         bool
		wantFound      bool
		wantLegacy     bool
		wantDevEngines bool
		wantErr        bool
		wantCode       errbuilder.ErrCode
	}{
		{
			name:   "missing file continues the walk",
			noFile: true,
		},
		{
			name:       "legacy declaration",
			content:    `{"name":"demo","packageManager":"yarn@3.2.3"}`,
			wantFound:  true,
			wantLegacy: true,
		},
		{
			name:           "structured declaration",
			content:        `{"devEngines":{"packageManager":{"name":"yarn","version":"^3.0.0"}}}`,
			wantFound:      true,
			wantDevEngines: true,
		},
		{
			name:      "null legacy field reads as absent",
			content:   `{"packageManager":null}`,
			wantFound: true,
		},
		{
			name:      "null devEngines reads as absent",
			content:   `{"devEngines":null}`,
			wantFound: true,
		},
		{
			name:      "non-object devEngines reads as absent",
			content:   `{"devEngines":"yarn"}`,
			wantFound: true,
		},
		{
			name:       "non-string legacy field survives loading",
			content:    `{"packageManager":3}`,
			wantFound:  true,
			wantLegacy: true,
		},
		{
			name:      "fields besides the declarations are ignored",
			content:   `{"name":"demo","version":"1.0.0","dependencies":{"left-pad":"^1.3.0"}}`,
			wantFound: true,
		},
		{
			name:     "array root",
			content:  `["not","a","manifest"]`,
			wantErr:  true,
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name:     "empty file",
			content:  "",
			wantErr:  true,
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name:     "malformed json",
			content:  `{"name": "demo",`,
			wantErr:  true,
			wantCode: errbuilder.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if !tt.noFile {
				writeManifest(t, dir, tt.content)
			}
			adapter := NewManifestFileAdapter()

			file, found, err := adapter.Load(dir)
			if tt.wantErr {
				require.Error(t, err)
				if diff := cmp.Diff(tt.wantCode, errbuilder.CodeOf(err)); diff != "" {
					t.Fatalf("unexpected error code (-want +got):\n%s", diff)
				}
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.wantFound, found); diff != "" {
				t.Fatalf("unexpected found (-want +got):\n%s", diff)
			}
			if !found {
				return
			}
			if diff := cmp.Diff(filepath.Join(dir, types.ManifestFileName), file.Path); diff != "" {
				t.Fatalf("unexpected path (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantLegacy, file.Manifest.HasPackageManager()); diff != "" {
				t.Fatalf("unexpected legacy presence (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantDevEngines, file.Manifest.HasDevEngines()); diff != "" {
				t.Fatalf("unexpected devEngines presence (-want +got):\n%s", diff)
			}
		})
	}
}
