package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/scorelib"
	"github.com/natefinch/atomic"
)

// Compile-time interface verification.
var _ scorelib.ScoreStore = (*ScoreStore)(nil)

// ScoreStore implements scorelib.ScoreStore, storing raw score files and
// thumbnails inside each document's directory.
type ScoreStore struct {
	paths Paths
}

// NewScoreStore creates a new ScoreStore.
func NewScoreStore(paths Paths) *ScoreStore {
	return &ScoreStore{paths: paths}
}

// WriteScore persists the raw uploaded bytes for a document.
func (s *ScoreStore) WriteScore(ctx context.Context, id string, data []byte) error {
	if err := os.MkdirAll(s.paths.DocumentDir(id), dirPerms); err != nil {
		return fmt.Errorf("creating document directory: %w", err)
	}
	if err := atomic.WriteFile(s.paths.ScorePath(id), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing score: %w", err)
	}
	return nil
}

// ScorePath returns the on-disk location of the raw file.
func (s *ScoreStore) ScorePath(id string) string {
	return s.paths.ScorePath(id)
}

// ThumbnailPath returns the on-disk location of the preview image.
func (s *ScoreStore) ThumbnailPath(id string) string {
	return s.paths.ThumbnailPath(id)
}

// ThumbnailExists reports whether a preview image has been generated.
func (s *ScoreStore) ThumbnailExists(id string) bool {
	_, err := os.Stat(s.paths.ThumbnailPath(id))
	return err == nil
}
