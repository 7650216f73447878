package fs_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/scorelib/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	t.Parallel()

	paths := fs.NewPaths("/library")

	assert.Equal(t, "/library", paths.Root())
	assert.Equal(t, "/library/documents", paths.DocumentsDir())
	assert.Equal(t, "/library/documents/doc-1", paths.DocumentDir("doc-1"))
	assert.Equal(t, "/library/documents/doc-1/score.pdf", paths.ScorePath("doc-1"))
	assert.Equal(t, "/library/documents/doc-1/metadata.json", paths.MetadataPath("doc-1"))
	assert.Equal(t, "/library/documents/doc-1/thumbnail.png", paths.ThumbnailPath("doc-1"))
	assert.Equal(t, "/library/index.json", paths.CatalogPath())
	assert.Equal(t, "/library/config.json", paths.ConfigPath())
}

func TestPaths_DisjointSubtrees(t *testing.T) {
	t.Parallel()

	paths := fs.NewPaths("/library")

	a := paths.DocumentDir("doc-a")
	b := paths.DocumentDir("doc-b")

	assert.NotEqual(t, a, b)
	assert.False(t, strings.HasPrefix(a, b+string(filepath.Separator)))
	assert.False(t, strings.HasPrefix(b, a+string(filepath.Separator)))
}

func TestPaths_EnsureStructure(t *testing.T) {
	t.Parallel()

	paths := fs.NewPaths(filepath.Join(t.TempDir(), "library"))

	require.NoError(t, paths.EnsureStructure())
	require.DirExists(t, paths.DocumentsDir())

	// Idempotent.
	require.NoError(t, paths.EnsureStructure())
}
