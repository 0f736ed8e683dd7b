package api

import (
	"syncvault/internal/backend"
	"syncvault/internal/config"
	"syncvault/internal/database"
	"syncvault/internal/datasync"
	"syncvault/internal/project"
	"syncvault/internal/websocket"
)

type Server struct {
	config   *config.Config
	store    *database.Store
	registry *project.Registry
	backends *backend.Manager
	engine   *datasync.Engine
	wsHub    *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.Store, registry *project.Registry, backends *backend.Manager, engine *datasync.Engine, wsHub *websocket.Hub) *Server {
	return &Server{
		config:   cfg,
		store:    store,
		registry: registry,
		backends: backends,
		engine:   engine,
		wsHub:    wsHub,
	}
}
