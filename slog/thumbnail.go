package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scorelib"
)

// Ensure ThumbnailGenerator implements scorelib.ThumbnailGenerator.
var _ scorelib.ThumbnailGenerator = (*ThumbnailGenerator)(nil)

// ThumbnailGenerator wraps a generator with logging. Thumbnail generation
// is fire-and-forget, so this log line is the only place its failures are
// ever observed.
type ThumbnailGenerator struct {
	next   scorelib.ThumbnailGenerator
	logger *slog.Logger
}

// NewThumbnailGenerator creates a new logging ThumbnailGenerator.
func NewThumbnailGenerator(next scorelib.ThumbnailGenerator, logger *slog.Logger) *ThumbnailGenerator {
	return &ThumbnailGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the outcome.
func (g *ThumbnailGenerator) Generate(ctx context.Context, pdfPath, thumbPath string) error {
	begin := time.Now()
	err := g.next.Generate(ctx, pdfPath, thumbPath)
	if err != nil {
		g.logger.Warn("thumbnail generation failed",
			"pdf", pdfPath,
			"duration", time.Since(begin),
			"error", err,
		)
		return err
	}
	g.logger.Debug("thumbnail generated",
		"pdf", pdfPath,
		"duration", time.Since(begin),
	)
	return nil
}
