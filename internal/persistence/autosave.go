package persistence

import (
	"context"

	"github.com/thenoetrevino/huddle/internal/store"
)

// Saver persists the current store contents. Services call it after every mutation.
type Saver interface {
	Persist(ctx context.Context) error
}

// AutoSaver snapshots a store and writes it through an Adapter
type AutoSaver struct {
	adapter *Adapter
	store   *store.Store
}

// NewAutoSaver binds adapter to s
func NewAutoSaver(adapter *Adapter, s *store.Store) *AutoSaver {
	return &AutoSaver{adapter: adapter, store: s}
}

// Persist saves a snapshot of the store
func (a *AutoSaver) Persist(ctx context.Context) error {
	return a.adapter.Save(ctx, a.store.Snapshot())
}

var _ Saver = (*AutoSaver)(nil)
