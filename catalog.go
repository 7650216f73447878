package scorelib

import (
	"context"
	"sort"
	"strings"
	"time"
)

// CatalogVersion is the schema version written to new catalogs.
const CatalogVersion = "1.0"

// CatalogEntry is the lightweight catalog projection of a document record.
// Exactly these fields mirror the record; for every entry in the catalog a
// record with the same ID and equal mirrored values must exist.
type CatalogEntry struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Composer     string    `json:"composer"`
	Instrument   string    `json:"instrument"`
	DateAdded    time.Time `json:"dateAdded"`
	LastAccessed time.Time `json:"lastAccessed"`
}

// Catalog is the single shared index file loaded on startup. Entry order is
// not semantically meaningful; consumers re-sort.
type Catalog struct {
	Version     string         `json:"version"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Documents   []CatalogEntry `json:"documents"`
}

// NewCatalog returns an empty catalog at the current schema version.
func NewCatalog(now time.Time) *Catalog {
	return &Catalog{
		Version:     CatalogVersion,
		LastUpdated: now,
		Documents:   []CatalogEntry{},
	}
}

// CatalogStore manages the shared catalog. Upsert and Remove are the only
// mutation entry points; implementations serialize mutations internally so
// a read-modify-write cycle is never interleaved with another writer.
type CatalogStore interface {
	// Load returns all catalog entries. An absent catalog is initialized
	// to empty; an unparsable one returns ECORRUPT.
	Load(ctx context.Context) ([]CatalogEntry, error)

	// Upsert replaces the entry with the same ID in place, preserving its
	// position, or appends a new entry.
	Upsert(ctx context.Context, entry CatalogEntry) error

	// Remove deletes the entry if present. Removing an absent entry is a
	// no-op.
	Remove(ctx context.Context, id string) error
}

// SortField selects the key used to order catalog entries.
type SortField string

// SortField values accepted by SortEntries and Config.SortBy.
const (
	SortByTitle        SortField = "title"
	SortByComposer     SortField = "composer"
	SortByDateAdded    SortField = "dateAdded"
	SortByLastAccessed SortField = "lastAccessed"
)

// SortDirection selects ascending or descending order.
type SortDirection string

// SortDirection values.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortEntries returns a copy of entries ordered by the given field. String
// fields compare case-insensitively. Unknown fields leave the input order
// untouched.
func SortEntries(entries []CatalogEntry, field SortField, direction SortDirection) []CatalogEntry {
	sorted := make([]CatalogEntry, len(entries))
	copy(sorted, entries)

	less := func(a, b CatalogEntry) bool {
		switch field {
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortByComposer:
			return strings.ToLower(a.Composer) < strings.ToLower(b.Composer)
		case SortByDateAdded:
			return a.DateAdded.Before(b.DateAdded)
		case SortByLastAccessed:
			return a.LastAccessed.Before(b.LastAccessed)
		}
		return false
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}
