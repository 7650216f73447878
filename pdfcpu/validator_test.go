package pdfcpu_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scorelib"
	"github.com/fwojciec/scorelib/pdfcpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects bytes that are not a PDF", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "score.pdf")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a PDF"), 0o644))

		_, err := pdfcpu.NewValidator().Validate(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, scorelib.EINVALID, scorelib.ErrorCode(err))
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.pdf")

		_, err := pdfcpu.NewValidator().Validate(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, scorelib.EINVALID, scorelib.ErrorCode(err))
	})
}
