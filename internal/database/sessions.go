package database

import (
	"context"
	"errors"
	"time"

	"syncvault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateSessionParams struct {
	ID        uuid.UUID
	UserID    string
	Token     string
	ExpiresAt int64
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) (*models.Session, error) {
	query := `
		INSERT INTO sessions (id, user_id, token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, token, created_at, expires_at
	`
	row := q.db.QueryRow(ctx, query, arg.ID, arg.UserID, arg.Token, time.Now().Unix(), arg.ExpiresAt)

	var session models.Session
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// GetUserBySessionToken resolves a bearer token to its user. Expiry is a
// comparison against the stored epoch, expired rows are left in place.
func (q *Queries) GetUserBySessionToken(ctx context.Context, token string) (*models.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.name, u.created_at, u.last_login
		FROM users u
		JOIN sessions s ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > $2
	`
	var user models.User
	err := q.db.QueryRow(ctx, query, token, time.Now().Unix()).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.CreatedAt,
		&user.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
