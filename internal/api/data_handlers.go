package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"syncvault/internal/datasync"

	"github.com/go-chi/chi/v5"
)

type StoreDataRequest struct {
	Collection string            `json:"collection" example:"skus"`
	Items      []json.RawMessage `json:"items" swaggertype:"array,object"`
}

type StoreDataResponse struct {
	Stored int `json:"stored" example:"3"`
}

// @Summary      Query project data
// @Description  Returns the project's records newest-first, optionally filtered to one collection. A non-numeric or missing limit defaults to 100; there is no upper bound.
// @Tags         data
// @Produce      json
// @Security     BearerAuth
// @Param        projectId   path      string  true   "Project id"
// @Param        collection  query     string  false  "Collection name"
// @Param        limit       query     int     false  "Row cap, default 100"
// @Success      200         {array}   models.DataRecord
// @Failure      401         {string}  string "Unauthorized"
// @Failure      404         {string}  string "Project not found"
// @Failure      500         {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/data [get]
func (s *Server) QueryDataHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var collection *string
	if c := r.URL.Query().Get("collection"); c != "" {
		collection = &c
	}

	limit := datasync.DefaultQueryLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}

	records, err := s.engine.Query(r.Context(), user.ID, projectID, collection, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// @Summary      Store project data
// @Description  Upserts a batch of opaque JSON items into a collection, keyed by item id within the project. Storage stats are recomputed synchronously afterwards.
// @Tags         data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId         path      string            true  "Project id"
// @Param        storeDataRequest  body      StoreDataRequest  true  "Collection and items"
// @Success      200               {object}  StoreDataResponse
// @Failure      400               {string}  string "Invalid data format"
// @Failure      401               {string}  string "Unauthorized"
// @Failure      404               {string}  string "Project not found"
// @Failure      500               {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/data [post]
func (s *Server) StoreDataHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var req StoreDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid data format", http.StatusBadRequest)
		return
	}

	stored, err := s.engine.Store(r.Context(), user.ID, projectID, req.Collection, req.Items)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, StoreDataResponse{Stored: stored})
}
