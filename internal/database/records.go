package database

import (
	"context"
	"time"

	"syncvault/internal/models"

	"github.com/jackc/pgx/v5"
)

type UpsertRecordParams struct {
	ID         string
	ProjectID  string
	Collection string
	Data       []byte
	DeviceID   *string
	EndUserID  *string
}

// UpsertRecord inserts or fully replaces a record keyed by (project_id, id).
// The key is deliberately not scoped by collection: the same id written into
// two collections is a single row and the later collection wins. created_at
// is preserved on replace so newest-first ordering stays stable.
func (q *Queries) UpsertRecord(ctx context.Context, arg UpsertRecordParams) error {
	query := `
		INSERT INTO project_data (id, project_id, collection, data, created_at, updated_at, device_id, end_user_id)
		VALUES ($1, $2, $3, $4, $5, $5, $6, $7)
		ON CONFLICT (project_id, id) DO UPDATE
		SET collection = EXCLUDED.collection,
		    data = EXCLUDED.data,
		    updated_at = EXCLUDED.updated_at,
		    device_id = EXCLUDED.device_id,
		    end_user_id = EXCLUDED.end_user_id
	`
	now := time.Now().Unix()
	_, err := q.db.Exec(ctx, query, arg.ID, arg.ProjectID, arg.Collection, string(arg.Data), now, arg.DeviceID, arg.EndUserID)
	return err
}

// ListRecords returns a project's records newest-first, optionally filtered
// to a single collection, capped at limit rows.
func (q *Queries) ListRecords(ctx context.Context, projectID string, collection *string, limit int) ([]models.DataRecord, error) {
	var query string
	var rows pgx.Rows
	var err error

	if collection == nil {
		query = `SELECT id, project_id, collection, data, created_at, updated_at, device_id, end_user_id
				 FROM project_data
				 WHERE project_id = $1
				 ORDER BY created_at DESC, id
				 LIMIT $2`
		rows, err = q.db.Query(ctx, query, projectID, limit)
	} else {
		query = `SELECT id, project_id, collection, data, created_at, updated_at, device_id, end_user_id
				 FROM project_data
				 WHERE project_id = $1 AND collection = $2
				 ORDER BY created_at DESC, id
				 LIMIT $3`
		rows, err = q.db.Query(ctx, query, projectID, *collection, limit)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DataRecord
	for rows.Next() {
		var record models.DataRecord
		var data string
		err := rows.Scan(
			&record.ID,
			&record.ProjectID,
			&record.Collection,
			&data,
			&record.CreatedAt,
			&record.UpdatedAt,
			&record.DeviceID,
			&record.EndUserID,
		)
		if err != nil {
			return nil, err
		}
		record.Data = []byte(data)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if records == nil {
		return []models.DataRecord{}, nil
	}

	return records, nil
}

func (q *Queries) CountRecords(ctx context.Context, projectID string, collection *string) (int64, error) {
	var count int64
	var err error
	if collection == nil {
		err = q.db.QueryRow(ctx, `SELECT COUNT(*) FROM project_data WHERE project_id = $1`, projectID).Scan(&count)
	} else {
		err = q.db.QueryRow(ctx, `SELECT COUNT(*) FROM project_data WHERE project_id = $1 AND collection = $2`, projectID, *collection).Scan(&count)
	}
	return count, err
}
