package scorelib

import "context"

// LibraryService is the orchestrating document store. It is the only
// component permitted to mutate both the metadata records and the catalog
// within one logical operation, and is responsible for keeping the two
// mirrored after every operation it performs.
//
// Operations that complete their first step but fail the second return
// EPARTIAL; retrying the operation is safe because catalog upserts and
// removes are idempotent.
type LibraryService interface {
	// Upload stores a new score and publishes its catalog entry. The
	// record and raw file exist before the entry becomes visible, so any
	// reader that sees the entry can read both.
	Upload(ctx context.Context, data []byte, fileName string) (*Document, error)

	// Edit merges the supplied fields into the record and mirrors the
	// result into the catalog.
	Edit(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// TouchAccess records that the document was opened for viewing.
	TouchAccess(ctx context.Context, id string) (*Document, error)

	// Open touches the document's access time and records it in the
	// user's recent-documents list.
	Open(ctx context.Context, id string) (*Document, error)

	// Remove deletes the document's files first and then its catalog
	// entry. Removing an absent document succeeds.
	Remove(ctx context.Context, id string) error

	// List returns the catalog entries verbatim; sorting and filtering
	// are the caller's responsibility.
	List(ctx context.Context) ([]CatalogEntry, error)

	// Search ranks catalog entries against a multi-term query.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)

	// Thumbnail returns the path of the document's preview image,
	// generating it on demand if missing.
	Thumbnail(ctx context.Context, id string) (string, error)

	// Reconcile repairs catalog/record divergence left behind by crashes:
	// records missing from the catalog are adopted, dangling entries are
	// dropped, and drifted mirrored fields are rewritten.
	Reconcile(ctx context.Context) (*ReconcileResult, error)
}

// ReconcileResult reports what a reconciliation pass changed.
type ReconcileResult struct {
	Adopted  int // records added to the catalog
	Dropped  int // dangling entries removed
	Repaired int // entries whose mirrored fields were rewritten
}
