package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aduh95/corepack/internal/types"
)

type manifestWrite struct {
	path string
	spec string
}

type fakeManifestEditor struct {
	specs  map[string]string
	writes []manifestWrite
}

func (f *fakeManifestEditor) ReadSpec(path string) (string, error) {
	return f.specs[path], nil
}

func (f *fakeManifestEditor) SetSpec(path string, spec string) (string, error) {
	previous := f.specs[path]
	f.writes = append(f.writes, manifestWrite{path: path, spec: spec})
	return previous, nil
}

type envWrite struct {
	path  string
	key   string
	value string
}

type fakeEnvEditor struct {
	writes []envWrite
	err    error
}

func (f *fakeEnvEditor) SetValue(path string, key string, value string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, envWrite{path: path, key: key, value: value})
	return nil
}

func prepared(name string, reference string) types.PreparedPackageManagerInfo {
	return types.PreparedPackageManagerInfo{
		Locator: types.Locator{Name: name, Reference: reference},
	}
}

func TestWriterPinsLegacyField(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{"/repo": legacyManifest("yarn@3.2.3")}}
	editor := &fakeManifestEditor{specs: map[string]string{"/repo/package.json": "yarn@3.2.3"}}
	envEditor := &fakeEnvEditor{}
	writer := NewWriter(NewResolver(manifests, fakeLocalEnv{}), editor, envEditor)

	result, err := writer.Persist(t.Context(), "/repo", prepared("yarn", "4.0.2"))
	require.NoError(t, err)

	want := types.PersistResult{PreviousSpec: "yarn@3.2.3", Target: "/repo/package.json"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]manifestWrite{{path: "/repo/package.json", spec: "yarn@4.0.2"}}, editor.writes, cmp.AllowUnexported(manifestWrite{})); diff != "" {
		t.Fatalf("unexpected manifest writes (-want +got):\n%s", diff)
	}
	require.Empty(t, envEditor.writes)
}

func TestWriterReportsUnknownPrevious(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{"/repo": {}}}
	editor := &fakeManifestEditor{}
	writer := NewWriter(NewResolver(manifests, fakeLocalEnv{}), editor, &fakeEnvEditor{})

	result, err := writer.Persist(t.Context(), "/repo", prepared("pnpm", "8.19.2"))
	require.NoError(t, err)

	want := types.PersistResult{PreviousSpec: "unknown", Target: "/repo/package.json"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestWriterTargetsStartDirWithoutProject(t *testing.T) {
	editor := &fakeManifestEditor{}
	writer := NewWriter(NewResolver(fakeManifests{}, fakeLocalEnv{}), editor, &fakeEnvEditor{})

	result, err := writer.Persist(t.Context(), "/fresh/project", prepared("npm", "9.1.0"))
	require.NoError(t, err)

	want := types.PersistResult{PreviousSpec: "unknown", Target: "/fresh/project/package.json"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]manifestWrite{{path: "/fresh/project/package.json", spec: "npm@9.1.0"}}, editor.writes, cmp.AllowUnexported(manifestWrite{})); diff != "" {
		t.Fatalf("unexpected manifest writes (-want +got):\n%s", diff)
	}
}

func TestWriterAcceptsBuildInsideConstraint(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{
		"/repo": devEnginesManifest(`{"name":"yarn","version":"^3.0.0"}`),
	}}
	editor := &fakeManifestEditor{}
	writer := NewWriter(NewResolver(manifests, fakeLocalEnv{}), editor, &fakeEnvEditor{})

	result, err := writer.Persist(t.Context(), "/repo", prepared("yarn", "3.4.1"))
	require.NoError(t, err)

	want := types.PersistResult{PreviousSpec: "unknown", Target: "/repo/package.json"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]manifestWrite{{path: "/repo/package.json", spec: "yarn@3.4.1"}}, editor.writes, cmp.AllowUnexported(manifestWrite{})); diff != "" {
		t.Fatalf("unexpected manifest writes (-want +got):\n%s", diff)
	}
}

func TestWriterRefusesBuildOutsideConstraint(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{
		"/repo": devEnginesManifest(`{"name":"yarn","version":"^3.0.0"}`),
	}}
	editor := &fakeManifestEditor{}
	envEditor := &fakeEnvEditor{}
	writer := NewWriter(NewResolver(manifests, fakeLocalEnv{}), editor, envEditor)

	_, err := writer.Persist(t.Context(), "/repo", prepared("yarn", "4.0.0"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	require.Empty(t, editor.writes)
	require.Empty(t, envEditor.writes)
}

func TestWriterRefusesDifferentManager(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{
		"/repo": devEnginesManifest(`{"name":"yarn","version":"^3.0.0"}`),
	}}
	editor := &fakeManifestEditor{}
	writer := NewWriter(NewResolver(manifests, fakeLocalEnv{}), editor, &fakeEnvEditor{})

	_, err := writer.Persist(t.Context(), "/repo", prepared("pnpm", "8.19.2"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	require.Empty(t, editor.writes)
}

func TestWriterUpdatesOwningOverrideFile(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{
		"/repo": devEnginesManifest(`{"name":"pnpm","version":"^8.0.0"}`),
	}}
	envs := fakeLocalEnv{envs: map[string]types.LocalEnv{
		"/repo": {
			Values:   map[string]string{"COREPACK_DEV_ENGINES_PNPM": "8.19.2"},
			FilePath: "/repo/.corepack.env",
			FromFile: map[string]string{"COREPACK_DEV_ENGINES_PNPM": "8.19.2"},
		},
	}}
	editor := &fakeManifestEditor{specs: map[string]string{"/repo/package.json": "pnpm@8.19.2"}}
	envEditor := &fakeEnvEditor{}
	writer := NewWriter(NewResolver(manifests, envs), editor, envEditor)

	result, err := writer.Persist(t.Context(), "/repo", prepared("pnpm", "8.20.0"))
	require.NoError(t, err)

	want := types.PersistResult{PreviousSpec: "pnpm@8.19.2", Target: "/repo/.corepack.env"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]envWrite{{path: "/repo/.corepack.env", key: "COREPACK_DEV_ENGINES_PNPM", value: "8.20.0"}}, envEditor.writes, cmp.AllowUnexported(envWrite{})); diff != "" {
		t.Fatalf("unexpected override writes (-want +got):\n%s", diff)
	}
	require.Empty(t, editor.writes)
}

func TestWriterRefusesOverrideOutsideConstraint(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{
		"/repo": devEnginesManifest(`{"name":"pnpm","version":"^8.0.0"}`),
	}}
	envs := fakeLocalEnv{envs: map[string]types.LocalEnv{
		"/repo": {
			Values:   map[string]string{"COREPACK_DEV_ENGINES_PNPM": "8.19.2"},
			FilePath: "/repo/.corepack.env",
			FromFile: map[string]string{"COREPACK_DEV_ENGINES_PNPM": "8.19.2"},
		},
	}}
	envEditor := &fakeEnvEditor{}
	writer := NewWriter(NewResolver(manifests, envs), &fakeManifestEditor{}, envEditor)

	_, err := writer.Persist(t.Context(), "/repo", prepared("pnpm", "9.0.0"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	require.Empty(t, envEditor.writes)
}

func TestWriterPropagatesOverrideWriteFailure(t *testing.T) {
	manifests := fakeManifests{files: map[string]types.Manifest{
		"/repo": devEnginesManifest(`{"name":"pnpm","version":"^8.0.0"}`),
	}}
	envs := fakeLocalEnv{envs: map[string]types.LocalEnv{
		"/repo": {
			Values:   map[string]string{"COREPACK_DEV_ENGINES_PNPM": "8.19.2"},
			FilePath: "/repo/.corepack.env",
			FromFile: map[string]string{"COREPACK_DEV_ENGINES_PNPM": "8.19.2"},
		},
	}}
	envEditor := &fakeEnvEditor{err: errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("unable to find COREPACK_DEV_ENGINES_PNPM in /repo/.corepack.env")}
	writer := NewWriter(NewResolver(manifests, envs), &fakeManifestEditor{}, envEditor)

	_, err := writer.Persist(t.Context(), "/repo", prepared("pnpm", "8.20.0"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInternal, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
}

func TestWriterRequiresEditors(t *testing.T) {
	var writer Writer

	_, err := writer.Persist(t.Context(), "/repo", prepared("yarn", "3.2.3"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
}
