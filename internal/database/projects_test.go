package database

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"syncvault/internal/models"

	"github.com/stretchr/testify/require"
)

func createRandomProject(t *testing.T, ownerID string) *models.Project {
	t.Helper()

	project, err := testStore.CreateProject(context.Background(), CreateProjectParams{
		ID:     newID(t),
		UserID: ownerID,
		Name:   "Test Project",
		Token:  newToken(t),
	})
	require.NoError(t, err)
	require.NotNil(t, project)
	require.Equal(t, models.BackendNotConfigured, project.BackendStatus)
	require.Equal(t, "none", project.BackendProvider)
	require.Zero(t, project.TotalStorageBytes)

	return project
}

func TestGetProjectByOwner(t *testing.T) {
	ownerID := createRandomUser(t)
	otherID := createRandomUser(t)
	project := createRandomProject(t, ownerID)

	found, err := testStore.GetProjectByOwner(context.Background(), project.ID, ownerID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, project.ID, found.ID)
	require.Equal(t, "Test Project", found.Name)

	// Someone else's project is indistinguishable from a missing one.
	notYours, err := testStore.GetProjectByOwner(context.Background(), project.ID, otherID)
	require.NoError(t, err)
	require.Nil(t, notYours)

	missing, err := testStore.GetProjectByOwner(context.Background(), "no-such-project", ownerID)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListProjectsByOwner(t *testing.T) {
	ownerID := createRandomUser(t)

	empty, err := testStore.ListProjectsByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	first := createRandomProject(t, ownerID)
	second := createRandomProject(t, ownerID)

	projects, err := testStore.ListProjectsByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	ids := []string{projects[0].ID, projects[1].ID}
	require.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

func TestDeleteProjectWithData(t *testing.T) {
	ownerID := createRandomUser(t)
	project := createRandomProject(t, ownerID)

	for i := 0; i < 3; i++ {
		err := testStore.UpsertRecord(context.Background(), UpsertRecordParams{
			ID:         newID(t),
			ProjectID:  project.ID,
			Collection: "items",
			Data:       []byte(`{"n":1}`),
		})
		require.NoError(t, err)
	}

	err := testStore.ExecTx(context.Background(), func(q *Queries) error {
		if _, err := q.DeleteProjectData(context.Background(), project.ID); err != nil {
			return err
		}
		_, err := q.DeleteProject(context.Background(), project.ID)
		return err
	})
	require.NoError(t, err)

	found, err := testStore.GetProjectByOwner(context.Background(), project.ID, ownerID)
	require.NoError(t, err)
	require.Nil(t, found)

	count, err := testStore.CountRecords(context.Background(), project.ID, nil)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestUpdateProjectBackend(t *testing.T) {
	ownerID := createRandomUser(t)
	project := createRandomProject(t, ownerID)

	cfg := json.RawMessage(`{"provider":"turso","databaseUrl":"libsql://db.turso.io","authToken":"tok"}`)
	err := testStore.UpdateProjectBackend(context.Background(), UpdateProjectBackendParams{
		ProjectID: project.ID,
		Provider:  "turso",
		Config:    cfg,
		Status:    models.BackendConnected,
	})
	require.NoError(t, err)

	found, err := testStore.GetProjectByOwner(context.Background(), project.ID, ownerID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "turso", found.BackendProvider)
	require.Equal(t, models.BackendConnected, found.BackendStatus)
	require.JSONEq(t, string(cfg), string(found.BackendConfig))
	require.NotNil(t, found.LastBackendTest)
	require.InDelta(t, time.Now().Unix(), *found.LastBackendTest, 5)
}

func TestRecomputeProjectStorage(t *testing.T) {
	ownerID := createRandomUser(t)
	project := createRandomProject(t, ownerID)

	payloads := [][]byte{
		[]byte(`{"a":1}`),
		[]byte(`{"bb":"two"}`),
		[]byte(`{"ccc":[1,2,3]}`),
	}
	var want int64
	for _, p := range payloads {
		err := testStore.UpsertRecord(context.Background(), UpsertRecordParams{
			ID:         newID(t),
			ProjectID:  project.ID,
			Collection: "items",
			Data:       p,
		})
		require.NoError(t, err)
		want += int64(len(p))
	}

	total, err := testStore.RecomputeProjectStorage(context.Background(), project.ID)
	require.NoError(t, err)
	require.Equal(t, want, total)

	found, err := testStore.GetProjectByOwner(context.Background(), project.ID, ownerID)
	require.NoError(t, err)
	require.Equal(t, want, found.TotalStorageBytes)

	// Recomputing with no new writes is a no-op.
	again, err := testStore.RecomputeProjectStorage(context.Background(), project.ID)
	require.NoError(t, err)
	require.Equal(t, want, again)
}
