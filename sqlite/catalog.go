package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/scorelib"
)

// Compile-time interface verification.
var _ scorelib.CatalogStore = (*CatalogStore)(nil)

// CatalogStore implements scorelib.CatalogStore on SQLite. Entries keep
// their insertion position: an upsert of an existing ID updates the row in
// place while new IDs append. The single-connection DB serializes mutations.
type CatalogStore struct {
	db *DB
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Load returns all catalog entries in insertion order.
func (s *CatalogStore) Load(ctx context.Context) ([]scorelib.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, composer, instrument, date_added, last_accessed
		FROM catalog_entries
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []scorelib.CatalogEntry{}
	for rows.Next() {
		var entry scorelib.CatalogEntry
		var dateAdded, lastAccessed string

		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Composer, &entry.Instrument,
			&dateAdded, &lastAccessed); err != nil {
			return nil, err
		}

		entry.DateAdded, err = parseRFC3339(dateAdded, "date_added")
		if err != nil {
			return nil, err
		}
		entry.LastAccessed, err = parseRFC3339(lastAccessed, "last_accessed")
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Upsert replaces the entry with the same ID in place or appends it.
func (s *CatalogStore) Upsert(ctx context.Context, entry scorelib.CatalogEntry) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE catalog_entries
		SET title = ?, composer = ?, instrument = ?, date_added = ?, last_accessed = ?
		WHERE id = ?
	`, entry.Title, entry.Composer, entry.Instrument,
		entry.DateAdded.Format(time.RFC3339Nano), entry.LastAccessed.Format(time.RFC3339Nano),
		entry.ID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO catalog_entries (id, title, composer, instrument, date_added, last_accessed)
			VALUES (?, ?, ?, ?, ?, ?)
		`, entry.ID, entry.Title, entry.Composer, entry.Instrument,
			entry.DateAdded.Format(time.RFC3339Nano), entry.LastAccessed.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}

	return s.touch(ctx)
}

// Remove deletes the entry if present.
func (s *CatalogStore) Remove(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM catalog_entries WHERE id = ?`, id); err != nil {
		return err
	}
	return s.touch(ctx)
}

// touch refreshes the catalog's last-updated timestamp.
func (s *CatalogStore) touch(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_meta (id, version, last_updated) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET last_updated = excluded.last_updated
	`, scorelib.CatalogVersion, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
