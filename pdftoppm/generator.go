// Package pdftoppm generates score thumbnails by shelling out to the
// pdftoppm utility from poppler. Generation is best-effort: the document
// store never blocks an upload on it.
package pdftoppm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fwojciec/scorelib"
)

// DefaultCommand is the binary invoked when none is configured.
const DefaultCommand = "pdftoppm"

// defaultScale is the pixel width of generated thumbnails.
const defaultScale = 400

// Compile-time interface verification.
var _ scorelib.ThumbnailGenerator = (*Generator)(nil)

// Generator implements scorelib.ThumbnailGenerator.
type Generator struct {
	// Command overrides the pdftoppm binary, e.g. for tests or a wrapper
	// script. Empty means DefaultCommand.
	Command string
}

// NewGenerator creates a Generator using the default command.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the first page of the PDF into thumbPath as a PNG. The
// tool writes into a scratch directory with its own suffix conventions, so
// the result is located afterwards and moved into place.
func (g *Generator) Generate(ctx context.Context, pdfPath, thumbPath string) error {
	command := g.Command
	if command == "" {
		command = DefaultCommand
	}

	scratch, err := os.MkdirTemp("", "scorelib-thumb-")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	prefix := filepath.Join(scratch, "page")
	cmd := exec.CommandContext(ctx, command,
		"-png",
		"-f", "1", "-l", "1",
		"-scale-to", fmt.Sprint(defaultScale),
		pdfPath, prefix,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running %s: %w: %s", command, err, out)
	}

	rendered, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return fmt.Errorf("locating rendered page: %w", err)
	}
	if len(rendered) == 0 {
		return fmt.Errorf("%s produced no output for %s", command, pdfPath)
	}

	if err := os.Rename(rendered[0], thumbPath); err != nil {
		// Rename fails across filesystems; fall back to a copy.
		data, readErr := os.ReadFile(rendered[0])
		if readErr != nil {
			return fmt.Errorf("reading rendered page: %w", readErr)
		}
		if writeErr := os.WriteFile(thumbPath, data, 0o644); writeErr != nil {
			return fmt.Errorf("writing thumbnail: %w", writeErr)
		}
	}

	return nil
}
