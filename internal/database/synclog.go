package database

import (
	"context"
	"time"

	"syncvault/internal/models"
)

type AppendSyncLogParams struct {
	ID        string
	ProjectID string
	Operation string
	Details   []byte
}

func (q *Queries) AppendSyncLog(ctx context.Context, arg AppendSyncLogParams) error {
	query := `
		INSERT INTO sync_log (id, project_id, operation, timestamp, details)
		VALUES ($1, $2, $3, $4, $5)
	`
	var details *string
	if arg.Details != nil {
		s := string(arg.Details)
		details = &s
	}
	_, err := q.db.Exec(ctx, query, arg.ID, arg.ProjectID, arg.Operation, time.Now().Unix(), details)
	return err
}

func (q *Queries) ListSyncLog(ctx context.Context, projectID string, limit int) ([]models.SyncLogEntry, error) {
	query := `
		SELECT id, project_id, operation, timestamp, details
		FROM sync_log
		WHERE project_id = $1
		ORDER BY timestamp DESC, id
		LIMIT $2
	`
	rows, err := q.db.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SyncLogEntry
	for rows.Next() {
		var entry models.SyncLogEntry
		var details *string
		if err := rows.Scan(&entry.ID, &entry.ProjectID, &entry.Operation, &entry.Timestamp, &details); err != nil {
			return nil, err
		}
		if details != nil {
			entry.Details = []byte(*details)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if entries == nil {
		return []models.SyncLogEntry{}, nil
	}

	return entries, nil
}
