package api

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"syncvault/internal/backend"
	"syncvault/internal/config"
	"syncvault/internal/database"
	"syncvault/internal/datasync"
	"syncvault/internal/project"
	"syncvault/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testServer *Server

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:14-alpine",
		postgres.WithDatabase("test_api_db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		log.Fatalf("Could not start postgres: %s", err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Could not get connection string: %s", err)
	}

	if err := database.RunMigrations(ctx, connStr); err != nil {
		log.Fatalf("Could not apply migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(pool)
	cfg := &config.Config{}
	registry := project.NewRegistry(store)
	backends := backend.NewManager(store, 10*time.Millisecond)
	stats := datasync.NewAggregator(store)
	engine := datasync.NewEngine(store, stats, wsHub)
	testServer = NewServer(cfg, store, registry, backends, engine, wsHub)

	os.Exit(m.Run())
}
