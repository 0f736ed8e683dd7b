// Package backend validates, probes and persists a project's external
// storage binding. Providers are dispatched through a tag registry so an
// unrecognized tag is a single fallthrough case.
package backend

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"syncvault/internal/apperr"
	"syncvault/internal/auth"
	"syncvault/internal/database"
	"syncvault/internal/models"
)

type Manager struct {
	store    *database.Store
	bindings map[string]Binding
}

func NewManager(store *database.Store, probeDelay time.Duration) *Manager {
	return &Manager{
		store:    store,
		bindings: newBindings(probeDelay),
	}
}

func (m *Manager) binding(provider string) (Binding, error) {
	b, ok := m.bindings[provider]
	if !ok {
		return nil, apperr.Validation("Unknown provider: %s", provider)
	}
	return b, nil
}

// ValidateConfig checks that the declared provider exists and that its
// required fields are present. No semantic validation of credentials.
func (m *Manager) ValidateConfig(cfg Config) error {
	b, err := m.binding(cfg.Provider)
	if err != nil {
		return err
	}
	return b.Validate(cfg)
}

// TestConnection dispatches to the provider's probe. It always returns a
// structured result, never an error.
func (m *Manager) TestConnection(ctx context.Context, cfg Config) ProbeResult {
	b, err := m.binding(cfg.Provider)
	if err != nil {
		return ProbeResult{Success: false, Message: err.Error(), Latency: 0}
	}
	return b.TestConnection(ctx, cfg)
}

// Test re-validates ownership and probes the submitted config without
// persisting anything.
func (m *Manager) Test(ctx context.Context, ownerID, projectID string, raw json.RawMessage) (ProbeResult, error) {
	if _, err := m.requireProject(ctx, ownerID, projectID); err != nil {
		return ProbeResult{}, err
	}

	cfg, err := parseConfig(raw)
	if err != nil {
		return ProbeResult{}, err
	}

	return m.TestConnection(ctx, cfg), nil
}

// Configure validates and probes the binding, then persists provider tag,
// raw config, status and health-check time as one row update. Nothing is
// persisted when the probe fails.
func (m *Manager) Configure(ctx context.Context, ownerID, projectID string, raw json.RawMessage) (ProbeResult, error) {
	if _, err := m.requireProject(ctx, ownerID, projectID); err != nil {
		return ProbeResult{}, err
	}

	cfg, err := parseConfig(raw)
	if err != nil {
		return ProbeResult{}, err
	}

	if err := m.ValidateConfig(cfg); err != nil {
		return ProbeResult{}, err
	}

	result := m.TestConnection(ctx, cfg)
	if !result.Success {
		return result, &apperr.BackendConnectionError{Msg: result.Message}
	}

	err = m.store.UpdateProjectBackend(ctx, database.UpdateProjectBackendParams{
		ProjectID: projectID,
		Provider:  cfg.Provider,
		Config:    raw,
		Status:    models.BackendConnected,
	})
	if err != nil {
		return result, apperr.Store(err)
	}

	m.logOperation(ctx, projectID, cfg.Provider, result.Latency)

	return result, nil
}

func (m *Manager) requireProject(ctx context.Context, ownerID, projectID string) (string, error) {
	project, err := m.store.GetProjectByOwner(ctx, projectID, ownerID)
	if err != nil {
		return "", apperr.Store(err)
	}
	if project == nil {
		return "", apperr.ErrNotFound
	}
	return project.ID, nil
}

func parseConfig(raw json.RawMessage) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, apperr.Validation("Invalid backend configuration")
	}
	return cfg, nil
}

// Audit trail only, a failed write does not fail the configure call.
func (m *Manager) logOperation(ctx context.Context, projectID, provider string, latency int64) {
	id, err := auth.NewID()
	if err != nil {
		log.Printf("WARN: sync log id generation failed: %v", err)
		return
	}
	details, _ := json.Marshal(map[string]interface{}{
		"provider": provider,
		"latency":  latency,
	})
	err = m.store.AppendSyncLog(ctx, database.AppendSyncLogParams{
		ID:        id,
		ProjectID: projectID,
		Operation: "configure_backend",
		Details:   details,
	})
	if err != nil {
		log.Printf("WARN: failed to append sync log for project %s: %v", projectID, err)
	}
}
