package datasync

import (
	"context"

	"syncvault/internal/apperr"
	"syncvault/internal/database"
)

// Aggregator maintains a project's derived storage statistics. Recompute is
// idempotent: it always rewrites the total from the current rows instead of
// tracking deltas, so any drift heals on the next call.
type Aggregator struct {
	store *database.Store
}

func NewAggregator(store *database.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Recompute sums the serialized payload byte lengths of every record in the
// project and writes the result onto total_storage_bytes.
func (a *Aggregator) Recompute(ctx context.Context, projectID string) (int64, error) {
	total, err := a.store.RecomputeProjectStorage(ctx, projectID)
	if err != nil {
		return 0, apperr.Store(err)
	}
	return total, nil
}
