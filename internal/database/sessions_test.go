package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createSessionForUser(t *testing.T, userID string, expiresAt int64) string {
	t.Helper()

	token := newToken(t)
	session, err := testStore.CreateSession(context.Background(), CreateSessionParams{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, token, session.Token)

	return token
}

func TestGetUserBySessionToken(t *testing.T) {
	userID := createRandomUser(t)
	token := createSessionForUser(t, userID, time.Now().Add(time.Hour).Unix())

	user, err := testStore.GetUserBySessionToken(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, userID, user.ID)

	unknown, err := testStore.GetUserBySessionToken(context.Background(), newToken(t))
	require.NoError(t, err)
	require.Nil(t, unknown)
}

func TestExpiredSessionTokenRejected(t *testing.T) {
	userID := createRandomUser(t)
	token := createSessionForUser(t, userID, time.Now().Add(-time.Minute).Unix())

	user, err := testStore.GetUserBySessionToken(context.Background(), token)
	require.NoError(t, err)
	require.Nil(t, user)
}
