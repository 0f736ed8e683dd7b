package database

import (
	"context"
	"testing"
	"time"

	"syncvault/internal/auth"

	"github.com/stretchr/testify/require"
)

func newID(t *testing.T) string {
	t.Helper()
	id, err := auth.NewID()
	require.NoError(t, err)
	return id
}

func newToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewToken()
	require.NoError(t, err)
	return token
}

func createRandomUser(t *testing.T) string {
	t.Helper()

	hashedPassword, err := auth.HashPassword("secretpassword")
	require.NoError(t, err)

	name := "Test User"
	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		ID:           newID(t),
		Email:        newID(t) + "@example.com",
		PasswordHash: hashedPassword,
		Name:         &name,
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	return user.ID
}

func TestCreateAndGetUserByEmail(t *testing.T) {
	hashedPassword, err := auth.HashPassword("secretpassword")
	require.NoError(t, err)

	email := newID(t) + "@example.com"
	name := "Test User"
	created, err := testStore.CreateUser(context.Background(), CreateUserParams{
		ID:           newID(t),
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         &name,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Nil(t, created.LastLogin)

	found, err := testStore.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, email, found.Email)
	require.NotNil(t, found.Name)
	require.Equal(t, "Test User", *found.Name)
	require.NotEmpty(t, found.PasswordHash)

	missing, err := testStore.GetUserByEmail(context.Background(), "nonexistent@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestDuplicateEmailRejected(t *testing.T) {
	hashedPassword, err := auth.HashPassword("secretpassword")
	require.NoError(t, err)

	email := newID(t) + "@example.com"
	params := CreateUserParams{
		ID:           newID(t),
		Email:        email,
		PasswordHash: hashedPassword,
	}
	_, err = testStore.CreateUser(context.Background(), params)
	require.NoError(t, err)

	params.ID = newID(t)
	_, err = testStore.CreateUser(context.Background(), params)
	require.Error(t, err)
}

func TestUpdateLastLogin(t *testing.T) {
	userID := createRandomUser(t)

	err := testStore.UpdateLastLogin(context.Background(), userID)
	require.NoError(t, err)

	var lastLogin *int64
	err = testStore.pool.QueryRow(context.Background(),
		`SELECT last_login FROM users WHERE id = $1`, userID).Scan(&lastLogin)
	require.NoError(t, err)
	require.NotNil(t, lastLogin)
	require.InDelta(t, time.Now().Unix(), *lastLogin, 5)
}
