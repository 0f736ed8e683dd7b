package models

type User struct {
	ID           string  `json:"id" db:"id"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Name         *string `json:"name,omitempty" db:"name"`
	CreatedAt    int64   `json:"created_at" db:"created_at"`
	LastLogin    *int64  `json:"last_login,omitempty" db:"last_login"`
}
