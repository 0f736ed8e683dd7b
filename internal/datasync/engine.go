// Package datasync is the tenant-scoped sync engine: collection-partitioned
// upsert and query of opaque JSON records, with storage stats recomputed
// after every mutation.
package datasync

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"syncvault/internal/apperr"
	"syncvault/internal/auth"
	"syncvault/internal/database"
	"syncvault/internal/models"
	"syncvault/internal/websocket"
)

// DefaultQueryLimit applies when the caller supplies no usable limit. There
// is no upper bound; that is an acknowledged resource risk.
const DefaultQueryLimit = 100

type Engine struct {
	store *database.Store
	stats *Aggregator
	hub   *websocket.Hub
}

// NewEngine wires the engine to the durable store, the stats aggregator and
// an optional hub for live sync events (nil disables broadcasting).
func NewEngine(store *database.Store, stats *Aggregator, hub *websocket.Hub) *Engine {
	return &Engine{store: store, stats: stats, hub: hub}
}

// recordMeta is sniffed from each submitted item; the payload itself is
// stored verbatim, these fields are only lifted into their own columns.
type recordMeta struct {
	ID        string `json:"id"`
	DeviceID  string `json:"deviceId"`
	EndUserID string `json:"endUserId"`
}

// SyncEvent is broadcast to a project's websocket watchers after a store.
type SyncEvent struct {
	ProjectID  string `json:"project_id"`
	Collection string `json:"collection"`
	Stored     int    `json:"stored"`
	Timestamp  int64  `json:"timestamp"`
}

// Query returns the project's records newest-first, optionally restricted to
// one collection. Ownership is re-validated from the database first.
func (e *Engine) Query(ctx context.Context, ownerID, projectID string, collection *string, limit int) ([]models.DataRecord, error) {
	if err := e.requireProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	records, err := e.store.ListRecords(ctx, projectID, collection, limit)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return records, nil
}

// Store upserts every item into the collection, keyed by (project, id). An
// item with no id gets a generated one. Concurrent writes to the same id are
// last-writer-wins. After the batch the project's storage total is
// recomputed synchronously over all of its data.
func (e *Engine) Store(ctx context.Context, ownerID, projectID, collection string, items []json.RawMessage) (int, error) {
	if err := e.requireProject(ctx, ownerID, projectID); err != nil {
		return 0, err
	}

	if collection == "" || items == nil {
		return 0, apperr.Validation("Invalid data format")
	}

	for _, item := range items {
		var meta recordMeta
		// Non-object items carry no addressable id; they get a generated one.
		_ = json.Unmarshal(item, &meta)

		id := meta.ID
		if id == "" {
			generated, err := auth.NewID()
			if err != nil {
				return 0, err
			}
			id = generated
		}

		err := e.store.UpsertRecord(ctx, database.UpsertRecordParams{
			ID:         id,
			ProjectID:  projectID,
			Collection: collection,
			Data:       item,
			DeviceID:   optional(meta.DeviceID),
			EndUserID:  optional(meta.EndUserID),
		})
		if err != nil {
			return 0, apperr.Store(err)
		}
	}

	if _, err := e.stats.Recompute(ctx, projectID); err != nil {
		return 0, err
	}

	e.logStore(ctx, projectID, collection, len(items))
	e.broadcast(projectID, collection, len(items))

	return len(items), nil
}

func (e *Engine) requireProject(ctx context.Context, ownerID, projectID string) error {
	project, err := e.store.GetProjectByOwner(ctx, projectID, ownerID)
	if err != nil {
		return apperr.Store(err)
	}
	if project == nil {
		return apperr.ErrNotFound
	}
	return nil
}

// Audit trail only, a failed write does not fail the store call.
func (e *Engine) logStore(ctx context.Context, projectID, collection string, stored int) {
	id, err := auth.NewID()
	if err != nil {
		log.Printf("WARN: sync log id generation failed: %v", err)
		return
	}
	details, _ := json.Marshal(map[string]interface{}{
		"collection": collection,
		"stored":     stored,
	})
	err = e.store.AppendSyncLog(ctx, database.AppendSyncLogParams{
		ID:        id,
		ProjectID: projectID,
		Operation: "store",
		Details:   details,
	})
	if err != nil {
		log.Printf("WARN: failed to append sync log for project %s: %v", projectID, err)
	}
}

func (e *Engine) broadcast(projectID, collection string, stored int) {
	if e.hub == nil {
		return
	}
	event, err := json.Marshal(SyncEvent{
		ProjectID:  projectID,
		Collection: collection,
		Stored:     stored,
		Timestamp:  time.Now().Unix(),
	})
	if err != nil {
		return
	}
	e.hub.PublishEvent(projectID, event)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
