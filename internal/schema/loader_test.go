package schema

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoader_CachesByModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSchema), 0o644))

	loader := NewLoader()
	ctx := context.Background()

	first, err := loader.Load(ctx, path)
	require.NoError(t, err)

	second, err := loader.Load(ctx, path)
	require.NoError(t, err)
	require.Same(t, first, second, "unchanged file must be served from cache")
}

func TestLoader_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSchema), 0o644))

	loader := NewLoader()
	ctx := context.Background()

	first, err := loader.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, first.Keywords, 6)

	updated := "keywords:\n  - name: Extra\n    kind: Bool\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	// Coarse mtime resolution can hide a rewrite within the same instant.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := loader.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, second.Keywords, 1)
	require.Equal(t, "Extra", second.Keywords[0].Name)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "reading schema")
}
