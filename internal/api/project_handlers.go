package api

import (
	"encoding/json"
	"net/http"

	"syncvault/internal/models"

	"github.com/go-chi/chi/v5"
)

type CreateProjectRequest struct {
	Name        string  `json:"name" example:"Inventory"`
	Description *string `json:"description,omitempty"`
}

// ProjectResponse is a project plus the display rendering of its storage
// total. The numeric total_storage_bytes stays untouched.
type ProjectResponse struct {
	models.Project
	TotalStorage string `json:"total_storage" example:"1.21 MB"`
}

func projectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{Project: *p, TotalStorage: formatBytes(p.TotalStorageBytes)}
}

// @Summary      Create a project
// @Description  Registers a new tenant namespace for the authenticated developer, with a fresh access token and no backend binding.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        createProjectRequest  body      CreateProjectRequest  true  "Project details"
// @Success      201                   {object}  ProjectResponse
// @Failure      400                   {string}  string "Project name required"
// @Failure      401                   {string}  string "Unauthorized"
// @Failure      500                   {string}  string "Internal Server Error"
// @Router       /projects [post]
func (s *Server) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := s.registry.Create(r.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, projectResponse(created))
}

// @Summary      List projects
// @Description  Lists the authenticated developer's projects, most recently created first.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.ProjectSummary
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects [get]
func (s *Server) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	projects, err := s.registry.List(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	summaries := make([]models.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, models.ProjectSummary{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			Token:           p.Token,
			CreatedAt:       p.CreatedAt,
			BackendProvider: p.BackendProvider,
			BackendStatus:   p.BackendStatus,
			ActiveUsers:     p.ActiveUsers,
			TotalStorage:    formatBytes(p.TotalStorageBytes),
		})
	}

	respondJSON(w, http.StatusOK, summaries)
}

// @Summary      Get a project
// @Description  Fetches one project. Responds 404 both when the project does not exist and when it belongs to another developer.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {object}  ProjectResponse
// @Failure      401        {string}  string "Unauthorized"
// @Failure      404        {string}  string "Project not found"
// @Failure      500        {string}  string "Internal Server Error"
// @Router       /projects/{projectId} [get]
func (s *Server) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	found, err := s.registry.Get(r.Context(), user.ID, projectID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, projectResponse(found))
}

// @Summary      Delete a project
// @Description  Deletes the project and every data record it holds, transactionally.
// @Tags         projects
// @Security     BearerAuth
// @Param        projectId  path  string  true  "Project id"
// @Success      204  {null}    nil "No Content"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      404  {string}  string "Project not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects/{projectId} [delete]
func (s *Server) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	if err := s.registry.Delete(r.Context(), user.ID, projectID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
