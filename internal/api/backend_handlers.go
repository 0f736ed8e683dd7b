package api

import (
	"encoding/json"
	"net/http"

	"syncvault/internal/backend"

	"github.com/go-chi/chi/v5"
)

type ConfigureBackendResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"turso backend configured successfully"`
	Latency int64  `json:"latency" example:"42"`
}

// @Summary      Configure a project's backend binding
// @Description  Validates the provider config, probes connectivity and persists the binding. Nothing is stored when the probe fails.
// @Tags         backend
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string          true  "Project id"
// @Param        config     body      backend.Config  true  "Provider configuration"
// @Success      200        {object}  ConfigureBackendResponse
// @Failure      400        {string}  string "Validation failure"
// @Failure      401        {string}  string "Unauthorized"
// @Failure      404        {string}  string "Project not found"
// @Failure      502        {string}  string "Backend connection failed"
// @Router       /projects/{projectId}/backend [post]
func (s *Server) ConfigureBackendHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.backends.Configure(r.Context(), user.ID, projectID, raw)
	if err != nil {
		respondError(w, err)
		return
	}

	var cfg backend.Config
	json.Unmarshal(raw, &cfg)

	respondJSON(w, http.StatusOK, ConfigureBackendResponse{
		Success: true,
		Message: cfg.Provider + " backend configured successfully",
		Latency: result.Latency,
	})
}

// @Summary      Test a backend binding
// @Description  Probes the submitted provider config without persisting it. Probe failures come back as a structured result, not an error status.
// @Tags         backend
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string          true  "Project id"
// @Param        config     body      backend.Config  true  "Provider configuration"
// @Success      200        {object}  backend.ProbeResult
// @Failure      400        {string}  string "Invalid request body"
// @Failure      401        {string}  string "Unauthorized"
// @Failure      404        {string}  string "Project not found"
// @Router       /projects/{projectId}/backend/test [post]
func (s *Server) TestBackendHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.backends.Test(r.Context(), user.ID, projectID, raw)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
