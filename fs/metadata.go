package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/fwojciec/scorelib"
	"github.com/natefinch/atomic"
	"golang.org/x/sync/errgroup"
)

// findConcurrency bounds parallel record reads during enumeration.
const findConcurrency = 8

// Compile-time interface verification.
var _ scorelib.MetadataStore = (*MetadataStore)(nil)

// MetadataStore implements scorelib.MetadataStore on per-document JSON
// files. Records for distinct IDs live in disjoint directories; updates to
// the same record are serialized behind an advisory file lock.
type MetadataStore struct {
	paths Paths
}

// NewMetadataStore creates a new MetadataStore.
func NewMetadataStore(paths Paths) *MetadataStore {
	return &MetadataStore{paths: paths}
}

// CreateDocument writes a fully populated record.
func (s *MetadataStore) CreateDocument(ctx context.Context, doc *scorelib.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	path := s.paths.MetadataPath(doc.ID)
	if _, err := os.Stat(path); err == nil {
		return scorelib.Errorf(scorelib.ECONFLICT, "document %q already exists", doc.ID)
	}

	if err := os.MkdirAll(s.paths.DocumentDir(doc.ID), dirPerms); err != nil {
		return fmt.Errorf("creating document directory: %w", err)
	}

	return writeJSON(path, doc)
}

// FindDocumentByID retrieves a record by ID.
func (s *MetadataStore) FindDocumentByID(ctx context.Context, id string) (*scorelib.Document, error) {
	data, err := os.ReadFile(s.paths.MetadataPath(id))
	if os.IsNotExist(err) {
		return nil, scorelib.Errorf(scorelib.ENOTFOUND, "document %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}

	return decodeDocument(data, id)
}

// UpdateDocument merges the supplied fields into an existing record under an
// advisory lock and returns the merged record.
func (s *MetadataStore) UpdateDocument(ctx context.Context, id string, upd scorelib.DocumentUpdate) (*scorelib.Document, error) {
	path := s.paths.MetadataPath(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, scorelib.Errorf(scorelib.ENOTFOUND, "document %q not found", id)
	}

	lock, err := acquireLock(path)
	if err != nil {
		return nil, fmt.Errorf("locking metadata: %w", err)
	}
	defer lock.release()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, scorelib.Errorf(scorelib.ENOTFOUND, "document %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}

	doc, err := decodeDocument(data, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(doc)

	if err := writeJSON(path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocument removes the document's entire directory subtree. Deleting
// an absent document is a no-op.
func (s *MetadataStore) DeleteDocument(ctx context.Context, id string) error {
	if err := os.RemoveAll(s.paths.DocumentDir(id)); err != nil {
		return fmt.Errorf("removing document directory: %w", err)
	}
	return nil
}

// FindDocuments enumerates every stored record, reading them concurrently.
// Directories without a metadata record are skipped.
func (s *MetadataStore) FindDocuments(ctx context.Context) ([]*scorelib.Document, error) {
	entries, err := os.ReadDir(s.paths.DocumentsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading documents directory: %w", err)
	}

	var (
		mu   sync.Mutex
		docs []*scorelib.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(findConcurrency)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		g.Go(func() error {
			doc, err := s.FindDocumentByID(gctx, id)
			if scorelib.ErrorCode(err) == scorelib.ENOTFOUND {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			docs = append(docs, doc)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// storedDocument mirrors scorelib.Document with optional viewer flags so
// records written before the flags existed decode with their defaults.
type storedDocument struct {
	scorelib.Document
	SideBySide *bool `json:"sideBySide"`
	PageOffset *bool `json:"pageOffset"`
}

// decodeDocument parses a stored record, defaulting the viewer flags when
// absent. The defaults are applied on every read and never written back.
func decodeDocument(data []byte, id string) (*scorelib.Document, error) {
	var stored storedDocument
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, scorelib.Errorf(scorelib.ECORRUPT, "document %q record does not parse: %v", id, err)
	}

	doc := stored.Document
	doc.SideBySide = true
	if stored.SideBySide != nil {
		doc.SideBySide = *stored.SideBySide
	}
	doc.PageOffset = false
	if stored.PageOffset != nil {
		doc.PageOffset = *stored.PageOffset
	}
	return &doc, nil
}

// writeJSON atomically replaces path with the indented JSON encoding of v.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
