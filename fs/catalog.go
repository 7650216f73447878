package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fwojciec/scorelib"
)

// Compile-time interface verification.
var _ scorelib.CatalogStore = (*CatalogStore)(nil)

// CatalogStore implements scorelib.CatalogStore on a single shared JSON
// file. Every mutation is a full read-modify-write cycle executed as a
// critical section: an in-process mutex serializes callers within the
// process and an advisory flock serializes against other processes, so a
// concurrent writer can never re-read the catalog mid-cycle.
type CatalogStore struct {
	paths Paths

	mu sync.Mutex
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(paths Paths) *CatalogStore {
	return &CatalogStore{paths: paths}
}

// Load returns all catalog entries, initializing an empty catalog if none
// exists yet.
func (s *CatalogStore) Load(ctx context.Context) ([]scorelib.CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, err := acquireLock(s.paths.CatalogPath())
	if err != nil {
		return nil, fmt.Errorf("locking catalog: %w", err)
	}
	defer lock.release()

	catalog, err := s.read()
	if err != nil {
		return nil, err
	}
	return catalog.Documents, nil
}

// Upsert replaces the entry with the same ID in place or appends it.
func (s *CatalogStore) Upsert(ctx context.Context, entry scorelib.CatalogEntry) error {
	return s.mutate(func(catalog *scorelib.Catalog) {
		for i := range catalog.Documents {
			if catalog.Documents[i].ID == entry.ID {
				catalog.Documents[i] = entry
				return
			}
		}
		catalog.Documents = append(catalog.Documents, entry)
	})
}

// Remove deletes the entry if present.
func (s *CatalogStore) Remove(ctx context.Context, id string) error {
	return s.mutate(func(catalog *scorelib.Catalog) {
		kept := catalog.Documents[:0]
		for _, entry := range catalog.Documents {
			if entry.ID != id {
				kept = append(kept, entry)
			}
		}
		catalog.Documents = kept
	})
}

// mutate runs apply against the current catalog and writes the result back,
// refreshing the last-updated timestamp. The whole cycle holds both locks.
func (s *CatalogStore) mutate(apply func(*scorelib.Catalog)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, err := acquireLock(s.paths.CatalogPath())
	if err != nil {
		return fmt.Errorf("locking catalog: %w", err)
	}
	defer lock.release()

	catalog, err := s.read()
	if err != nil {
		return err
	}

	apply(catalog)
	catalog.LastUpdated = time.Now().UTC()

	return writeJSON(s.paths.CatalogPath(), catalog)
}

// read parses the catalog file, initializing it to empty when absent.
// Corruption surfaces as ECORRUPT and is never silently repaired. Caller
// must hold both locks.
func (s *CatalogStore) read() (*scorelib.Catalog, error) {
	path := s.paths.CatalogPath()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		catalog := scorelib.NewCatalog(time.Now().UTC())
		if err := s.paths.EnsureStructure(); err != nil {
			return nil, fmt.Errorf("creating library structure: %w", err)
		}
		if err := writeJSON(path, catalog); err != nil {
			return nil, err
		}
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var catalog scorelib.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, scorelib.Errorf(scorelib.ECORRUPT, "catalog does not parse: %v", err)
	}
	if catalog.Documents == nil {
		catalog.Documents = []scorelib.CatalogEntry{}
	}
	return &catalog, nil
}
