// Package slog provides logging decorators for scorelib services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scorelib"
)

// Ensure Catalog implements scorelib.CatalogStore at compile time.
var _ scorelib.CatalogStore = (*Catalog)(nil)

// Catalog wraps a CatalogStore with debug logging for mutations.
type Catalog struct {
	next   scorelib.CatalogStore
	logger *slog.Logger
}

// NewCatalog creates a new logging Catalog.
func NewCatalog(next scorelib.CatalogStore, logger *slog.Logger) *Catalog {
	return &Catalog{next: next, logger: logger}
}

// Load delegates to the wrapped store.
func (c *Catalog) Load(ctx context.Context) ([]scorelib.CatalogEntry, error) {
	return c.next.Load(ctx)
}

// Upsert logs the mutation and delegates to the wrapped store.
func (c *Catalog) Upsert(ctx context.Context, entry scorelib.CatalogEntry) error {
	begin := time.Now()
	err := c.next.Upsert(ctx, entry)
	c.logger.Debug("catalog upsert",
		"id", entry.ID,
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// Remove logs the mutation and delegates to the wrapped store.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	begin := time.Now()
	err := c.next.Remove(ctx, id)
	c.logger.Debug("catalog remove",
		"id", id,
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}
