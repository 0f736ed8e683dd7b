package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const defaultSyncLogLimit = 100

// @Summary      Read a project's sync log
// @Description  Returns the audit trail of store and backend-configuration operations, newest-first.
// @Tags         data
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true   "Project id"
// @Param        limit      query     int     false  "Row cap, default 100"
// @Success      200        {array}   models.SyncLogEntry
// @Failure      401        {string}  string "Unauthorized"
// @Failure      404        {string}  string "Project not found"
// @Failure      500        {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/sync-log [get]
func (s *Server) GetSyncLogHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	if _, err := s.registry.Get(r.Context(), user.ID, projectID); err != nil {
		respondError(w, err)
		return
	}

	limit := defaultSyncLogLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := s.store.ListSyncLog(r.Context(), projectID, limit)
	if err != nil {
		http.Error(w, "Failed to retrieve sync log", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
