package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWrite := func(rel string) string {
		path := filepath.Join(tempDir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		return path
	}

	b := mustWrite("nested/b.hcl")
	a := mustWrite("a.hcl")
	mustWrite("ignored.txt")
	mustWrite("nested/also_ignored.json")

	got, err := FindFilesByExtension(tempDir, ".hcl")
	require.NoError(t, err)

	want := []string{a, b}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected file list (-want +got):\n%s", diff)
	}
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "does-not-exist"), ".hcl")
	require.Error(t, err)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}
