package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/battlemap/internal/battlemap"
)

// Store persists projected map templates.
type Store interface {
	Save(ctx context.Context, name string, m battlemap.MapModel, fingerprint []byte) (bool, error)
}

// SyncResult counts what Sync did.
type SyncResult struct {
	Stored    int
	Unchanged int
}

// Sync saves the projection of every template in name order.
func (c *Catalog) Sync(ctx context.Context, store Store) (SyncResult, error) {
	var res SyncResult
	for _, name := range c.Names() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		t := c.templates[name]
		fp := t.Fingerprint()
		saved, err := store.Save(ctx, name, t.ToModel(), fp[:])
		if err != nil {
			return res, fmt.Errorf("syncing map %q: %w", name, err)
		}
		if saved {
			res.Stored++
		} else {
			res.Unchanged++
		}
	}

	slog.Info("map templates synced", "stored", res.Stored, "unchanged", res.Unchanged)
	return res, nil
}
