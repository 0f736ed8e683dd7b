package auth

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
)

const (
	idLength    = 21
	tokenLength = 40
)

// NewID returns a 21-char id for users, projects, data records and log rows.
func NewID() (string, error) {
	generateID, err := nanoid.Standard(idLength)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}
	return generateID(), nil
}

// NewToken returns a 40-char opaque bearer token, used for both session
// tokens and project access tokens.
func NewToken() (string, error) {
	generateID, err := nanoid.Standard(tokenLength)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}
	return generateID(), nil
}
