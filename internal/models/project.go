package models

import "encoding/json"

// Backend status values for a project's provider binding.
const (
	BackendNotConfigured = "not_configured"
	BackendConnected     = "connected"
	BackendError         = "error"
)

type Project struct {
	ID              string          `json:"id"`
	UserID          string          `json:"-"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Token           string          `json:"token"`
	CreatedAt       int64           `json:"created_at"`
	BackendProvider string          `json:"backend_provider"`
	BackendConfig   json.RawMessage `json:"backend_config,omitempty"`
	BackendStatus   string          `json:"backend_status"`
	LastBackendTest *int64          `json:"last_backend_test,omitempty"`
	ActiveUsers     int             `json:"active_users"`
	// TotalStorageBytes is derived, recomputed after every store call.
	TotalStorageBytes int64 `json:"total_storage_bytes"`
}

// ProjectSummary is the list view of a project. TotalStorage carries the
// human-readable rendering of the stored byte count.
type ProjectSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Token           string  `json:"token"`
	CreatedAt       int64   `json:"created_at"`
	BackendProvider string  `json:"backend_provider"`
	BackendStatus   string  `json:"backend_status"`
	ActiveUsers     int     `json:"active_users"`
	TotalStorage    string  `json:"total_storage" example:"1.21 MB"`
}
