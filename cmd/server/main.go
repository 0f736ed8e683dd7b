// @title           SyncVault API
// @version         1.0
// @description     Multi-tenant backend-as-a-service: per-project collection storage with pluggable external backend bindings.
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"

	"syncvault/internal/api"
	"syncvault/internal/backend"
	"syncvault/internal/config"
	"syncvault/internal/database"
	"syncvault/internal/datasync"
	"syncvault/internal/project"
	"syncvault/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "syncvault/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	if err := database.RunMigrations(ctx, cfg.DB.Source); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(dbpool)
	registry := project.NewRegistry(store)
	backends := backend.NewManager(store, cfg.Backend.ProbeDelay())
	stats := datasync.NewAggregator(store)
	engine := datasync.NewEngine(store, stats, wsHub)
	server := api.NewServer(cfg, store, registry, backends, engine, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(api.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/v1/auth/register", server.RegisterHandler)
	r.Post("/api/v1/auth/login", server.LoginHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.Get("/projects", server.ListProjectsHandler)
		r.Post("/projects", server.CreateProjectHandler)
		r.Get("/projects/{projectId}", server.GetProjectHandler)
		r.Delete("/projects/{projectId}", server.DeleteProjectHandler)
		r.Post("/projects/{projectId}/backend", server.ConfigureBackendHandler)
		r.Post("/projects/{projectId}/backend/test", server.TestBackendHandler)
		r.Get("/projects/{projectId}/data", server.QueryDataHandler)
		r.Post("/projects/{projectId}/data", server.StoreDataHandler)
		r.Get("/projects/{projectId}/sync-log", server.GetSyncLogHandler)
	})

	log.Printf("Starting server on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
