package database

import (
	"context"
	"errors"
	"time"

	"syncvault/internal/models"

	"github.com/jackc/pgx/v5"
)

type CreateUserParams struct {
	ID           string
	Email        string
	PasswordHash string
	Name         *string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, name, created_at, last_login
	`
	row := q.db.QueryRow(ctx, query, arg.ID, arg.Email, arg.PasswordHash, arg.Name, time.Now().Unix())

	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.CreatedAt,
		&user.LastLogin,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, last_login
		FROM users
		WHERE email = $1
	`
	var user models.User

	err := q.db.QueryRow(ctx, query, email).Scan(
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

func (q *Queries) UpdateLastLogin(ctx context.Context, userID string) error {
	query := `UPDATE users SET last_login = $1 WHERE id = $2`
	_, err := q.db.Exec(ctx, query, time.Now().Unix(), userID)
	return err
}
