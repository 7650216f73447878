package mock

import (
	"context"

	"github.com/fwojciec/scorelib"
)

var _ scorelib.LibraryService = (*LibraryService)(nil)

// LibraryService is a mock implementation of scorelib.LibraryService.
type LibraryService struct {
	UploadFn      func(ctx context.Context, data []byte, fileName string) (*scorelib.Document, error)
	EditFn        func(ctx context.Context, id string, upd scorelib.DocumentUpdate) (*scorelib.Document, error)
	TouchAccessFn func(ctx context.Context, id string) (*scorelib.Document, error)
	OpenFn        func(ctx context.Context, id string) (*scorelib.Document, error)
	RemoveFn      func(ctx context.Context, id string) error
	ListFn        func(ctx context.Context) ([]scorelib.CatalogEntry, error)
	SearchFn      func(ctx context.Context, query string, limit int) ([]scorelib.SearchResult, error)
	ThumbnailFn   func(ctx context.Context, id string) (string, error)
	ReconcileFn   func(ctx context.Context) (*scorelib.ReconcileResult, error)
}

func (s *LibraryService) Upload(ctx context.Context, data []byte, fileName string) (*scorelib.Document, error) {
	return s.UploadFn(ctx, data, fileName)
}

func (s *LibraryService) Edit(ctx context.Context, id string, upd scorelib.DocumentUpdate) (*scorelib.Document, error) {
	return s.EditFn(ctx, id, upd)
}

func (s *LibraryService) TouchAccess(ctx context.Context, id string) (*scorelib.Document, error) {
	return s.TouchAccessFn(ctx, id)
}

func (s *LibraryService) Open(ctx context.Context, id string) (*scorelib.Document, error) {
	return s.OpenFn(ctx, id)
}

func (s *LibraryService) Remove(ctx context.Context, id string) error {
	return s.RemoveFn(ctx, id)
}

func (s *LibraryService) List(ctx context.Context) ([]scorelib.CatalogEntry, error) {
	return s.ListFn(ctx)
}

func (s *LibraryService) Search(ctx context.Context, query string, limit int) ([]scorelib.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}

func (s *LibraryService) Thumbnail(ctx context.Context, id string) (string, error) {
	return s.ThumbnailFn(ctx, id)
}

func (s *LibraryService) Reconcile(ctx context.Context) (*scorelib.ReconcileResult, error) {
	return s.ReconcileFn(ctx)
}
