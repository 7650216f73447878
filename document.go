package scorelib

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Document represents the full metadata record for a single score. One
// record is stored per document directory; the catalog mirrors a lightweight
// projection of it (see CatalogEntry).
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Composer     string    `json:"composer"`
	Instrument   string    `json:"instrument"`
	DateAdded    time.Time `json:"dateAdded"`
	LastAccessed time.Time `json:"lastAccessed"`
	FileName     string    `json:"fileName"`
	FileSize     int64     `json:"fileSize"`
	SortOrder    int       `json:"sortOrder"`

	// Viewer settings. SideBySide selects paired-page display; PageOffset
	// shifts pairing by one page (1, 2-3, 4-5 instead of 1-2, 3-4).
	SideBySide bool `json:"sideBySide"`
	PageOffset bool `json:"pageOffset"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.FileName == "" {
		return Errorf(EINVALID, "document file name required")
	}
	return nil
}

// Entry returns the catalog projection of the document.
func (d *Document) Entry() CatalogEntry {
	return CatalogEntry{
		ID:           d.ID,
		Title:        d.Title,
		Composer:     d.Composer,
		Instrument:   d.Instrument,
		DateAdded:    d.DateAdded,
		LastAccessed: d.LastAccessed,
	}
}

// NewDocument returns a fully populated record for a freshly uploaded file.
// The title is defaulted from the file name with the extension stripped.
func NewDocument(id, fileName string, fileSize int64, now time.Time) *Document {
	return &Document{
		ID:           id,
		Title:        strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		DateAdded:    now,
		LastAccessed: now,
		FileName:     fileName,
		FileSize:     fileSize,
		SideBySide:   true,
		PageOffset:   false,
	}
}

// DocumentUpdate represents fields that can be updated on a document.
// ID, DateAdded, FileName, and FileSize are immutable after creation and
// deliberately have no counterpart here.
type DocumentUpdate struct {
	Title        *string    `json:"title"`
	Composer     *string    `json:"composer"`
	Instrument   *string    `json:"instrument"`
	LastAccessed *time.Time `json:"lastAccessed"`
	SortOrder    *int       `json:"sortOrder"`
	SideBySide   *bool      `json:"sideBySide"`
	PageOffset   *bool      `json:"pageOffset"`
}

// Apply merges the supplied fields into the document. Unsupplied fields
// retain their current values.
func (u DocumentUpdate) Apply(d *Document) {
	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.Composer != nil {
		d.Composer = *u.Composer
	}
	if u.Instrument != nil {
		d.Instrument = *u.Instrument
	}
	if u.LastAccessed != nil {
		d.LastAccessed = *u.LastAccessed
	}
	if u.SortOrder != nil {
		d.SortOrder = *u.SortOrder
	}
	if u.SideBySide != nil {
		d.SideBySide = *u.SideBySide
	}
	if u.PageOffset != nil {
		d.PageOffset = *u.PageOffset
	}
}

// MetadataStore manages per-document metadata records. Records for distinct
// IDs are independent; implementations serialize concurrent access to the
// same record.
type MetadataStore interface {
	// CreateDocument writes a fully populated record.
	// Returns ECONFLICT if a record with the same ID already exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist and ECORRUPT if the
	// stored bytes do not parse.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// UpdateDocument merges the supplied fields into an existing record and
	// returns the full merged record.
	// Returns ENOTFOUND if the record does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument removes the record and every file stored alongside it.
	// Deleting an absent record is a no-op.
	DeleteDocument(ctx context.Context, id string) error

	// FindDocuments retrieves every stored record.
	FindDocuments(ctx context.Context) ([]*Document, error)
}

// ScoreStore stores the raw score files and thumbnails that back each
// record. The binary delivery layer reads the returned paths directly.
type ScoreStore interface {
	// WriteScore persists the raw uploaded bytes for a document.
	WriteScore(ctx context.Context, id string, data []byte) error

	// ScorePath returns the on-disk location of the raw file.
	ScorePath(id string) string

	// ThumbnailPath returns the on-disk location of the preview image,
	// which may not exist yet.
	ThumbnailPath(id string) string

	// ThumbnailExists reports whether a preview image has been generated.
	ThumbnailExists(id string) bool
}
