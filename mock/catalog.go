package mock

import (
	"context"

	"github.com/fwojciec/scorelib"
)

var _ scorelib.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is a mock implementation of scorelib.CatalogStore.
type CatalogStore struct {
	LoadFn   func(ctx context.Context) ([]scorelib.CatalogEntry, error)
	UpsertFn func(ctx context.Context, entry scorelib.CatalogEntry) error
	RemoveFn func(ctx context.Context, id string) error
}

func (s *CatalogStore) Load(ctx context.Context) ([]scorelib.CatalogEntry, error) {
	return s.LoadFn(ctx)
}

func (s *CatalogStore) Upsert(ctx context.Context, entry scorelib.CatalogEntry) error {
	return s.UpsertFn(ctx, entry)
}

func (s *CatalogStore) Remove(ctx context.Context, id string) error {
	return s.RemoveFn(ctx, id)
}
