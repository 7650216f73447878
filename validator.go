package scorelib

import "context"

// ScoreValidator checks that an uploaded file is a readable PDF.
type ScoreValidator interface {
	// Validate inspects the file at path and returns its page count.
	// Returns EINVALID if the file is not a valid PDF.
	Validate(ctx context.Context, path string) (int, error)
}
