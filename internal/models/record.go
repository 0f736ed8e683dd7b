package models

import "encoding/json"

// DataRecord is an opaque JSON payload stored under a project's collection.
// The record id is unique per project, not per collection: writing the same
// id into two collections replaces the record rather than duplicating it.
type DataRecord struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"-"`
	Collection string          `json:"collection"`
	Data       json.RawMessage `json:"data" swaggertype:"object"`
	CreatedAt  int64           `json:"created_at"`
	UpdatedAt  int64           `json:"updated_at"`
	DeviceID   *string         `json:"device_id,omitempty"`
	EndUserID  *string         `json:"end_user_id,omitempty"`
}

type SyncLogEntry struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Operation string          `json:"operation" example:"store"`
	Timestamp int64           `json:"timestamp"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}
