package api

import (
	"log"
	"net/http"

	"syncvault/internal/websocket"
)

// ServeWsHandler upgrades a project owner to a live sync feed: every
// successful store on the project is pushed to connected watchers. Ownership
// is re-checked against the database before the upgrade.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	projectID := r.URL.Query().Get("project")
	if token == "" || projectID == "" {
		http.Error(w, "token and project query parameters required", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserBySessionToken(r.Context(), token)
	if err != nil || user == nil {
		http.Error(w, "Invalid or expired session token", http.StatusUnauthorized)
		return
	}

	owned, err := s.store.GetProjectByOwner(r.Context(), projectID, user.ID)
	if err != nil || owned == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, projectID)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
