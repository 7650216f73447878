// Package fs provides file-backed storage for the score library. Every
// document owns one directory under documents/ holding its raw PDF, its
// metadata record, and an optional thumbnail; the catalog and config are
// single JSON files at the library root.
package fs

import (
	"os"
	"path/filepath"
)

// File and directory names within a library root. Stable within one
// deployment; readers of the raw files depend on them.
const (
	documentsDirName  = "documents"
	scoreFileName     = "score.pdf"
	metadataFileName  = "metadata.json"
	thumbnailFileName = "thumbnail.png"
	catalogFileName   = "index.json"
	configFileName    = "config.json"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Paths maps document identifiers to their on-disk locations. Distinct IDs
// map to disjoint directory subtrees.
type Paths struct {
	root string
}

// NewPaths creates a Paths rooted at the given library directory.
func NewPaths(root string) Paths {
	return Paths{root: root}
}

// Root returns the library root directory.
func (p Paths) Root() string {
	return p.root
}

// DocumentsDir returns the directory holding all per-document subtrees.
func (p Paths) DocumentsDir() string {
	return filepath.Join(p.root, documentsDirName)
}

// DocumentDir returns the directory owned by a single document.
func (p Paths) DocumentDir(id string) string {
	return filepath.Join(p.DocumentsDir(), id)
}

// ScorePath returns the location of the raw uploaded file.
func (p Paths) ScorePath(id string) string {
	return filepath.Join(p.DocumentDir(id), scoreFileName)
}

// MetadataPath returns the location of the document's metadata record.
func (p Paths) MetadataPath(id string) string {
	return filepath.Join(p.DocumentDir(id), metadataFileName)
}

// ThumbnailPath returns the location of the document's preview image.
func (p Paths) ThumbnailPath(id string) string {
	return filepath.Join(p.DocumentDir(id), thumbnailFileName)
}

// CatalogPath returns the location of the shared catalog file.
func (p Paths) CatalogPath() string {
	return filepath.Join(p.root, catalogFileName)
}

// ConfigPath returns the location of the user-preferences file.
func (p Paths) ConfigPath() string {
	return filepath.Join(p.root, configFileName)
}

// EnsureStructure creates the library root and documents directory.
func (p Paths) EnsureStructure() error {
	return os.MkdirAll(p.DocumentsDir(), dirPerms)
}
