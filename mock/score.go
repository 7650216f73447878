package mock

import (
	"context"

	"github.com/fwojciec/scorelib"
)

var _ scorelib.ScoreStore = (*ScoreStore)(nil)

// ScoreStore is a mock implementation of scorelib.ScoreStore.
type ScoreStore struct {
	WriteScoreFn      func(ctx context.Context, id string, data []byte) error
	ScorePathFn       func(id string) string
	ThumbnailPathFn   func(id string) string
	ThumbnailExistsFn func(id string) bool
}

func (s *ScoreStore) WriteScore(ctx context.Context, id string, data []byte) error {
	return s.WriteScoreFn(ctx, id, data)
}

func (s *ScoreStore) ScorePath(id string) string {
	return s.ScorePathFn(id)
}

func (s *ScoreStore) ThumbnailPath(id string) string {
	return s.ThumbnailPathFn(id)
}

func (s *ScoreStore) ThumbnailExists(id string) bool {
	return s.ThumbnailExistsFn(id)
}
