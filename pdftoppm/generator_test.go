package pdftoppm_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scorelib/pdftoppm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer writes a shell script that mimics pdftoppm's output
// convention (prefix + page-number suffix) without needing poppler.
func fakeRenderer(t *testing.T) string {
	t.Helper()

	script := filepath.Join(t.TempDir(), "fake-pdftoppm")
	// Last two arguments are the input PDF and the output prefix.
	content := "#!/bin/sh\nfor last; do :; done\necho fake-png-bytes > \"$last-1.png\"\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))
	return script
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("installs the rendered page at the thumbnail path", func(t *testing.T) {
		t.Parallel()

		g := &pdftoppm.Generator{Command: fakeRenderer(t)}
		thumbPath := filepath.Join(t.TempDir(), "thumbnail.png")

		err := g.Generate(context.Background(), "score.pdf", thumbPath)

		require.NoError(t, err)
		require.FileExists(t, thumbPath)
	})

	t.Run("fails when the tool fails", func(t *testing.T) {
		t.Parallel()

		g := &pdftoppm.Generator{Command: "false"}

		err := g.Generate(context.Background(), "score.pdf", filepath.Join(t.TempDir(), "t.png"))

		require.Error(t, err)
	})

	t.Run("fails when the tool produces no output", func(t *testing.T) {
		t.Parallel()

		g := &pdftoppm.Generator{Command: "true"}

		err := g.Generate(context.Background(), "score.pdf", filepath.Join(t.TempDir(), "t.png"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no output")
	})
}
