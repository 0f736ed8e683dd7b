package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendAndListSyncLog(t *testing.T) {
	ownerID := createRandomUser(t)
	project := createRandomProject(t, ownerID)

	err := testStore.AppendSyncLog(context.Background(), AppendSyncLogParams{
		ID:        newID(t),
		ProjectID: project.ID,
		Operation: "store",
		Details:   []byte(`{"collection":"skus","count":3}`),
	})
	require.NoError(t, err)

	err = testStore.AppendSyncLog(context.Background(), AppendSyncLogParams{
		ID:        newID(t),
		ProjectID: project.ID,
		Operation: "configure_backend",
	})
	require.NoError(t, err)

	entries, err := testStore.ListSyncLog(context.Background(), project.ID, 100)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	ops := []string{entries[0].Operation, entries[1].Operation}
	require.ElementsMatch(t, []string{"store", "configure_backend"}, ops)
	for _, entry := range entries {
		require.Equal(t, project.ID, entry.ProjectID)
		require.NotZero(t, entry.Timestamp)
		if entry.Operation == "store" {
			require.JSONEq(t, `{"collection":"skus","count":3}`, string(entry.Details))
		} else {
			require.Nil(t, entry.Details)
		}
	}

	capped, err := testStore.ListSyncLog(context.Background(), project.ID, 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
}

func TestSyncLogCascadesOnProjectDelete(t *testing.T) {
	ownerID := createRandomUser(t)
	project := createRandomProject(t, ownerID)

	err := testStore.AppendSyncLog(context.Background(), AppendSyncLogParams{
		ID:        newID(t),
		ProjectID: project.ID,
		Operation: "store",
	})
	require.NoError(t, err)

	err = testStore.ExecTx(context.Background(), func(q *Queries) error {
		if _, err := q.DeleteProjectData(context.Background(), project.ID); err != nil {
			return err
		}
		_, err := q.DeleteProject(context.Background(), project.ID)
		return err
	})
	require.NoError(t, err)

	entries, err := testStore.ListSyncLog(context.Background(), project.ID, 100)
	require.NoError(t, err)
	require.Empty(t, entries)
}
