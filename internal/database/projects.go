package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"syncvault/internal/models"

	"github.com/jackc/pgx/v5"
)

type CreateProjectParams struct {
	ID          string
	UserID      string
	Name        string
	Description *string
	Token       string
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (*models.Project, error) {
	query := `
		INSERT INTO projects (id, user_id, name, description, token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, description, token, created_at,
		          backend_provider, backend_config, backend_status, last_backend_test,
		          active_users, total_storage_bytes
	`
	row := q.db.QueryRow(ctx, query, arg.ID, arg.UserID, arg.Name, arg.Description, arg.Token, time.Now().Unix())
	return scanProject(row)
}

// GetProjectByOwner returns nil, nil when the project does not exist or is
// owned by someone else. Ownership is always re-read from the row, never
// cached.
func (q *Queries) GetProjectByOwner(ctx context.Context, projectID, ownerID string) (*models.Project, error) {
	query := `
		SELECT id, user_id, name, description, token, created_at,
		       backend_provider, backend_config, backend_status, last_backend_test,
		       active_users, total_storage_bytes
		FROM projects
		WHERE id = $1 AND user_id = $2
	`
	project, err := scanProject(q.db.QueryRow(ctx, query, projectID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

func (q *Queries) ListProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	query := `
		SELECT id, user_id, name, description, token, created_at,
		       backend_provider, backend_config, backend_status, last_backend_test,
		       active_users, total_storage_bytes
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`
	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if projects == nil {
		return []models.Project{}, nil
	}

	return projects, nil
}

// DeleteProjectData removes every data record of a project. Callers pairing
// it with DeleteProject must run both inside ExecTx so the project is never
// observed without its data or the other way around.
func (q *Queries) DeleteProjectData(ctx context.Context, projectID string) (int64, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM project_data WHERE project_id = $1`, projectID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (q *Queries) DeleteProject(ctx context.Context, projectID string) (bool, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

type UpdateProjectBackendParams struct {
	ProjectID string
	Provider  string
	Config    json.RawMessage
	Status    string
}

// UpdateProjectBackend persists a validated provider binding as one row
// update: provider tag, serialized config, status and the health-check time.
func (q *Queries) UpdateProjectBackend(ctx context.Context, arg UpdateProjectBackendParams) error {
	query := `
		UPDATE projects
		SET backend_provider = $1,
		    backend_config = $2,
		    backend_status = $3,
		    last_backend_test = $4
		WHERE id = $5
	`
	_, err := q.db.Exec(ctx, query, arg.Provider, string(arg.Config), arg.Status, time.Now().Unix(), arg.ProjectID)
	return err
}

// RecomputeProjectStorage rewrites total_storage_bytes from the sum of the
// serialized payload lengths. Recomputed in full so it self-heals from drift.
func (q *Queries) RecomputeProjectStorage(ctx context.Context, projectID string) (int64, error) {
	query := `
		UPDATE projects
		SET total_storage_bytes = (
			SELECT COALESCE(SUM(OCTET_LENGTH(data)), 0)
			FROM project_data
			WHERE project_id = $1
		)
		WHERE id = $1
		RETURNING total_storage_bytes
	`
	var total int64
	if err := q.db.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	var config *string
	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Name,
		&project.Description,
		&project.Token,
		&project.CreatedAt,
		&project.BackendProvider,
		&config,
		&project.BackendStatus,
		&project.LastBackendTest,
		&project.ActiveUsers,
		&project.TotalStorageBytes,
	)
	if err != nil {
		return nil, err
	}
	if config != nil {
		project.BackendConfig = json.RawMessage(*config)
	}
	return &project, nil
}
