// Package mock provides function-field mock implementations of the
// scorelib interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/scorelib"
)

var _ scorelib.MetadataStore = (*MetadataStore)(nil)

// MetadataStore is a mock implementation of scorelib.MetadataStore.
type MetadataStore struct {
	CreateDocumentFn   func(ctx context.Context, doc *scorelib.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*scorelib.Document, error)
	UpdateDocumentFn   func(ctx context.Context, id string, upd scorelib.DocumentUpdate) (*scorelib.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
	FindDocumentsFn    func(ctx context.Context) ([]*scorelib.Document, error)
}

func (s *MetadataStore) CreateDocument(ctx context.Context, doc *scorelib.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *MetadataStore) FindDocumentByID(ctx context.Context, id string) (*scorelib.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *MetadataStore) UpdateDocument(ctx context.Context, id string, upd scorelib.DocumentUpdate) (*scorelib.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *MetadataStore) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *MetadataStore) FindDocuments(ctx context.Context) ([]*scorelib.Document, error) {
	return s.FindDocumentsFn(ctx)
}
