package scorelib

import "context"

// ThumbnailGenerator produces a preview image for a score. Generation is
// best-effort: the document store triggers it in the background after an
// upload and never awaits or propagates its outcome.
type ThumbnailGenerator interface {
	// Generate renders a preview of the file at pdfPath into thumbPath.
	Generate(ctx context.Context, pdfPath, thumbPath string) error
}
