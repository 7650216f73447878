// Package library orchestrates the document store. It is the only place
// that mutates both the per-document metadata records and the shared
// catalog within one logical operation, keeping the catalog's lightweight
// entries mirrored after every operation.
package library

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/scorelib"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// defaultThumbnailWorkers bounds concurrent background thumbnail renders.
const defaultThumbnailWorkers = 2

// Compile-time interface verification.
var _ scorelib.LibraryService = (*Library)(nil)

// Library implements scorelib.LibraryService. Writes follow a
// write-then-publish discipline: the raw file and metadata record exist
// before the catalog entry is added, so a reader that sees the entry can
// always read the record and file. A crash between steps leaves divergence
// that Reconcile repairs.
type Library struct {
	Metadata scorelib.MetadataStore
	Catalog  scorelib.CatalogStore
	Config   scorelib.ConfigStore
	Scores   scorelib.ScoreStore

	// Validator rejects uploads that are not readable PDFs. Optional.
	Validator scorelib.ScoreValidator

	// Thumbnails renders preview images in the background. Optional;
	// outcomes are observed only by the generator's own logging.
	Thumbnails scorelib.ThumbnailGenerator

	// ThumbnailWorkers bounds concurrent renders. Zero means the default.
	ThumbnailWorkers int

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time

	semOnce sync.Once
	sem     *semaphore.Weighted
	wg      sync.WaitGroup
}

// Upload stores a new score under a fresh identifier and publishes its
// catalog entry last. Thumbnail generation is triggered fire-and-forget;
// its failure never fails the upload.
func (l *Library) Upload(ctx context.Context, data []byte, fileName string) (*scorelib.Document, error) {
	id := uuid.New().String()

	if err := l.Scores.WriteScore(ctx, id, data); err != nil {
		return nil, err
	}

	if l.Validator != nil {
		if _, err := l.Validator.Validate(ctx, l.Scores.ScorePath(id)); err != nil {
			// Drop the partially written directory before surfacing.
			_ = l.Metadata.DeleteDocument(ctx, id)
			return nil, err
		}
	}

	doc := scorelib.NewDocument(id, fileName, int64(len(data)), l.now())
	if err := l.Metadata.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	if err := l.Catalog.Upsert(ctx, doc.Entry()); err != nil {
		return doc, scorelib.Errorf(scorelib.EPARTIAL,
			"document %q stored but not published to catalog: %s", id, scorelib.ErrorMessage(err))
	}

	l.generateThumbnailAsync(id)

	return doc, nil
}

// Edit merges the supplied fields into the record, then mirrors the five
// catalog fields from the merged result.
func (l *Library) Edit(ctx context.Context, id string, upd scorelib.DocumentUpdate) (*scorelib.Document, error) {
	doc, err := l.Metadata.UpdateDocument(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	// The upsert is idempotent, so callers seeing EPARTIAL may retry it
	// alone (or run Reconcile).
	if err := l.Catalog.Upsert(ctx, doc.Entry()); err != nil {
		return doc, scorelib.Errorf(scorelib.EPARTIAL,
			"document %q updated but catalog entry not refreshed: %s", id, scorelib.ErrorMessage(err))
	}

	return doc, nil
}

// TouchAccess records that the document was opened for viewing.
func (l *Library) TouchAccess(ctx context.Context, id string) (*scorelib.Document, error) {
	now := l.now()
	return l.Edit(ctx, id, scorelib.DocumentUpdate{LastAccessed: &now})
}

// Open touches the document's access time and records it in the recent
// documents list and as the last opened document.
func (l *Library) Open(ctx context.Context, id string) (*scorelib.Document, error) {
	doc, err := l.TouchAccess(ctx, id)
	if err != nil {
		return nil, err
	}

	config, err := l.Config.Load(ctx)
	if err != nil {
		return doc, scorelib.Errorf(scorelib.EPARTIAL,
			"document %q opened but recents not updated: %s", id, scorelib.ErrorMessage(err))
	}
	config.AddRecent(id)
	config.LastOpenedDocumentID = id
	if err := l.Config.Save(ctx, config); err != nil {
		return doc, scorelib.Errorf(scorelib.EPARTIAL,
			"document %q opened but recents not updated: %s", id, scorelib.ErrorMessage(err))
	}

	return doc, nil
}

// Remove deletes the document's files first, then its catalog entry, so
// the catalog never points at files that were published after it. Removing
// an absent document succeeds.
func (l *Library) Remove(ctx context.Context, id string) error {
	if err := l.Metadata.DeleteDocument(ctx, id); err != nil {
		return err
	}

	if err := l.Catalog.Remove(ctx, id); err != nil {
		return scorelib.Errorf(scorelib.EPARTIAL,
			"document %q deleted but catalog entry not removed: %s", id, scorelib.ErrorMessage(err))
	}

	return nil
}

// List returns the catalog entries verbatim.
func (l *Library) List(ctx context.Context) ([]scorelib.CatalogEntry, error) {
	return l.Catalog.Load(ctx)
}

// Search ranks catalog entries against a multi-term query.
func (l *Library) Search(ctx context.Context, query string, limit int) ([]scorelib.SearchResult, error) {
	entries, err := l.Catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scorelib.Search(query, entries, limit), nil
}

// Thumbnail returns the path of the document's preview image, rendering it
// synchronously if it does not exist yet.
func (l *Library) Thumbnail(ctx context.Context, id string) (string, error) {
	if _, err := l.Metadata.FindDocumentByID(ctx, id); err != nil {
		return "", err
	}

	if l.Scores.ThumbnailExists(id) {
		return l.Scores.ThumbnailPath(id), nil
	}

	if l.Thumbnails == nil {
		return "", scorelib.Errorf(scorelib.ENOTFOUND, "no thumbnail for document %q", id)
	}
	if err := l.Thumbnails.Generate(ctx, l.Scores.ScorePath(id), l.Scores.ThumbnailPath(id)); err != nil {
		return "", err
	}

	return l.Scores.ThumbnailPath(id), nil
}

// Reconcile repairs divergence between the metadata records and the
// catalog: records missing from the catalog are adopted, dangling entries
// whose records are gone are dropped, and entries whose mirrored fields
// drifted are rewritten. Safe to run at any time.
func (l *Library) Reconcile(ctx context.Context) (*scorelib.ReconcileResult, error) {
	docs, err := l.Metadata.FindDocuments(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := l.Catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]scorelib.CatalogEntry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	result := &scorelib.ReconcileResult{}

	recorded := make(map[string]bool, len(docs))
	for _, doc := range docs {
		recorded[doc.ID] = true

		entry, ok := byID[doc.ID]
		switch {
		case !ok:
			if err := l.Catalog.Upsert(ctx, doc.Entry()); err != nil {
				return result, err
			}
			result.Adopted++
		case entry != doc.Entry():
			if err := l.Catalog.Upsert(ctx, doc.Entry()); err != nil {
				return result, err
			}
			result.Repaired++
		}
	}

	for _, entry := range entries {
		if recorded[entry.ID] {
			continue
		}
		if err := l.Catalog.Remove(ctx, entry.ID); err != nil {
			return result, err
		}
		result.Dropped++
	}

	return result, nil
}

// Wait blocks until all in-flight background thumbnail renders finish.
func (l *Library) Wait() {
	l.wg.Wait()
}

func (l *Library) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now().UTC()
}

func (l *Library) generateThumbnailAsync(id string) {
	if l.Thumbnails == nil {
		return
	}

	l.semOnce.Do(func() {
		workers := l.ThumbnailWorkers
		if workers <= 0 {
			workers = defaultThumbnailWorkers
		}
		l.sem = semaphore.NewWeighted(int64(workers))
	})

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		// Detached from the triggering operation: uploads never await
		// or observe thumbnail outcomes.
		ctx := context.Background()
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer l.sem.Release(1)

		_ = l.Thumbnails.Generate(ctx, l.Scores.ScorePath(id), l.Scores.ThumbnailPath(id))
	}()
}
