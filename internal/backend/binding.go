package backend

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"syncvault/internal/apperr"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Config is the parsed form of a project's backend binding blob. The blob is
// persisted as the raw JSON the caller submitted; this struct exists only for
// field-presence validation and probing.
type Config struct {
	Provider         string `json:"provider"`
	DatabaseURL      string `json:"databaseUrl,omitempty"`
	AuthToken        string `json:"authToken,omitempty"`
	ConnectionString string `json:"connectionString,omitempty"`
	URL              string `json:"url,omitempty"`
	AnonKey          string `json:"anonKey,omitempty"`
	BaseURL          string `json:"baseUrl,omitempty"`
	APIKey           string `json:"apiKey,omitempty"`
}

// ProbeResult is what a connectivity test reports. Probes never return an
// error: failures are folded into the result so a bad binding cannot crash
// the caller.
type ProbeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Latency int64  `json:"latency" example:"42"`
}

// Binding is one provider category. Validate checks required-field presence
// only; TestConnection probes connectivity and measures wall-clock latency.
type Binding interface {
	Provider() string
	Validate(cfg Config) error
	TestConnection(ctx context.Context, cfg Config) ProbeResult
}

func newBindings(probeDelay time.Duration) map[string]Binding {
	bindings := []Binding{
		noneBinding{},
		tursoBinding{},
		serverlessBinding{name: "planetscale", delay: probeDelay},
		serverlessBinding{name: "neon", delay: probeDelay},
		supabaseBinding{delay: probeDelay},
		customBinding{delay: probeDelay},
	}
	byTag := make(map[string]Binding, len(bindings))
	for _, b := range bindings {
		byTag[b.Provider()] = b
	}
	return byTag
}

// noneBinding is local-only mode: nothing to validate, nothing to reach.
type noneBinding struct{}

func (noneBinding) Provider() string { return "none" }

func (noneBinding) Validate(Config) error { return nil }

func (noneBinding) TestConnection(context.Context, Config) ProbeResult {
	return ProbeResult{Success: true, Message: "Local-only mode (no backend)", Latency: 0}
}

// tursoBinding is the only binding with a real client: it opens a libsql
// connection and runs a trivial liveness query, so it can genuinely fail on
// network or credential problems.
type tursoBinding struct{}

func (tursoBinding) Provider() string { return "turso" }

func (tursoBinding) Validate(cfg Config) error {
	if cfg.DatabaseURL == "" || cfg.AuthToken == "" {
		return apperr.Validation("Turso requires databaseUrl and authToken")
	}
	return nil
}

func (tursoBinding) TestConnection(ctx context.Context, cfg Config) ProbeResult {
	start := time.Now()

	dsn := cfg.DatabaseURL
	if strings.Contains(dsn, "?") {
		dsn += "&authToken=" + cfg.AuthToken
	} else {
		dsn += "?authToken=" + cfg.AuthToken
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return failure(err, start)
	}
	defer db.Close()

	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return failure(err, start)
	}

	return ProbeResult{
		Success: true,
		Message: "turso connection successful",
		Latency: time.Since(start).Milliseconds(),
	}
}

// serverlessBinding covers the planetscale/neon class of providers. The
// probe is a stub: no real client is wired yet, it only waits out a bounded
// simulated round trip and reports success.
type serverlessBinding struct {
	name  string
	delay time.Duration
}

func (b serverlessBinding) Provider() string { return b.name }

func (b serverlessBinding) Validate(cfg Config) error {
	if cfg.ConnectionString == "" {
		return apperr.Validation("%s requires connectionString", b.name)
	}
	return nil
}

func (b serverlessBinding) TestConnection(ctx context.Context, _ Config) ProbeResult {
	return simulateProbe(ctx, b.name, b.delay)
}

// supabaseBinding covers the BaaS provider class. Probe is a stub, same as
// serverlessBinding.
type supabaseBinding struct {
	delay time.Duration
}

func (supabaseBinding) Provider() string { return "supabase" }

func (supabaseBinding) Validate(cfg Config) error {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return apperr.Validation("Supabase requires url and anonKey")
	}
	return nil
}

func (b supabaseBinding) TestConnection(ctx context.Context, _ Config) ProbeResult {
	return simulateProbe(ctx, "supabase", b.delay)
}

// customBinding is a tenant-provided HTTP endpoint. Probe is a stub.
type customBinding struct {
	delay time.Duration
}

func (customBinding) Provider() string { return "custom" }

func (customBinding) Validate(cfg Config) error {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return apperr.Validation("Custom backend requires baseUrl and apiKey")
	}
	return nil
}

func (b customBinding) TestConnection(ctx context.Context, _ Config) ProbeResult {
	return simulateProbe(ctx, "custom", b.delay)
}

func simulateProbe(ctx context.Context, provider string, delay time.Duration) ProbeResult {
	start := time.Now()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return failure(ctx.Err(), start)
	}

	return ProbeResult{
		Success: true,
		Message: provider + " connection successful",
		Latency: time.Since(start).Milliseconds(),
	}
}

func failure(err error, start time.Time) ProbeResult {
	return ProbeResult{
		Success: false,
		Message: err.Error(),
		Latency: time.Since(start).Milliseconds(),
	}
}
