package models

import "github.com/google/uuid"

// Session is a 30-day opaque bearer token. Expiry is enforced by comparison
// when the token is used, sessions are never actively deleted.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
	CreatedAt int64     `json:"created_at"`
	ExpiresAt int64     `json:"expires_at"`
}
