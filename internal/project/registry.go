// Package project owns project lifecycle and ownership enforcement. Every
// operation re-reads the owner binding from the database before acting.
package project

import (
	"context"
	"strings"

	"syncvault/internal/apperr"
	"syncvault/internal/auth"
	"syncvault/internal/database"
	"syncvault/internal/models"
)

type Registry struct {
	store *database.Store
}

func NewRegistry(store *database.Store) *Registry {
	return &Registry{store: store}
}

// Create registers a project under ownerID with a fresh id and a
// non-guessable access token. The backend binding starts out unconfigured.
func (r *Registry) Create(ctx context.Context, ownerID, name string, description *string) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("Project name required")
	}

	id, err := auth.NewID()
	if err != nil {
		return nil, err
	}
	token, err := auth.NewToken()
	if err != nil {
		return nil, err
	}

	created, err := r.store.CreateProject(ctx, database.CreateProjectParams{
		ID:          id,
		UserID:      ownerID,
		Name:        name,
		Description: description,
		Token:       token,
	})
	if err != nil {
		return nil, apperr.Store(err)
	}

	return created, nil
}

// List returns the owner's projects, most recently created first. Never
// fails with not-found; an owner with no projects gets an empty slice.
func (r *Registry) List(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects, err := r.store.ListProjectsByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return projects, nil
}

// Get fails with ErrNotFound when the project does not exist or belongs to a
// different owner; the caller cannot tell which.
func (r *Registry) Get(ctx context.Context, ownerID, projectID string) (*models.Project, error) {
	project, err := r.store.GetProjectByOwner(ctx, projectID, ownerID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if project == nil {
		return nil, apperr.ErrNotFound
	}
	return project, nil
}

// Delete removes the project and all its data records in one transaction:
// no observer sees the project gone while its rows remain, or vice versa.
// Sync log rows cascade with the project row.
func (r *Registry) Delete(ctx context.Context, ownerID, projectID string) error {
	project, err := r.Get(ctx, ownerID, projectID)
	if err != nil {
		return err
	}

	err = r.store.ExecTx(ctx, func(q *database.Queries) error {
		if _, err := q.DeleteProjectData(ctx, project.ID); err != nil {
			return err
		}
		deleted, err := q.DeleteProject(ctx, project.ID)
		if err != nil {
			return err
		}
		if !deleted {
			// Raced with a concurrent delete, the row is already gone.
			return apperr.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if err == apperr.ErrNotFound {
			return err
		}
		return apperr.Store(err)
	}

	return nil
}
