package mock

import (
	"context"

	"github.com/fwojciec/scorelib"
)

var _ scorelib.ThumbnailGenerator = (*ThumbnailGenerator)(nil)

// ThumbnailGenerator is a mock implementation of scorelib.ThumbnailGenerator.
type ThumbnailGenerator struct {
	GenerateFn func(ctx context.Context, pdfPath, thumbPath string) error
}

func (g *ThumbnailGenerator) Generate(ctx context.Context, pdfPath, thumbPath string) error {
	return g.GenerateFn(ctx, pdfPath, thumbPath)
}

var _ scorelib.ScoreValidator = (*ScoreValidator)(nil)

// ScoreValidator is a mock implementation of scorelib.ScoreValidator.
type ScoreValidator struct {
	ValidateFn func(ctx context.Context, path string) (int, error)
}

func (v *ScoreValidator) Validate(ctx context.Context, path string) (int, error) {
	return v.ValidateFn(ctx, path)
}
