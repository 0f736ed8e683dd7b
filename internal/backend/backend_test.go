package backend

import (
	"context"
	"testing"
	"time"

	"syncvault/internal/apperr"

	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(nil, 10*time.Millisecond)
}

func TestValidateConfig(t *testing.T) {
	m := testManager(t)

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "turso missing authToken",
			cfg:     Config{Provider: "turso", DatabaseURL: "libsql://db.turso.io"},
			wantErr: "Turso requires databaseUrl and authToken",
		},
		{
			name: "turso complete",
			cfg:  Config{Provider: "turso", DatabaseURL: "libsql://db.turso.io", AuthToken: "tok"},
		},
		{
			name:    "planetscale missing connectionString",
			cfg:     Config{Provider: "planetscale"},
			wantErr: "planetscale requires connectionString",
		},
		{
			name: "neon complete",
			cfg:  Config{Provider: "neon", ConnectionString: "postgres://..."},
		},
		{
			name:    "supabase missing anonKey",
			cfg:     Config{Provider: "supabase", URL: "https://x.supabase.co"},
			wantErr: "Supabase requires url and anonKey",
		},
		{
			name:    "custom missing apiKey",
			cfg:     Config{Provider: "custom", BaseURL: "https://api.example.com"},
			wantErr: "Custom backend requires baseUrl and apiKey",
		},
		{
			name: "custom complete",
			cfg:  Config{Provider: "custom", BaseURL: "https://api.example.com", APIKey: "k"},
		},
		{
			name: "none has no required fields",
			cfg:  Config{Provider: "none"},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "firebase"},
			wantErr: "Unknown provider: firebase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.ValidateConfig(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *apperr.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.wantErr, vErr.Msg)
		})
	}
}

func TestTestConnection_None(t *testing.T) {
	m := testManager(t)

	start := time.Now()
	result := m.TestConnection(context.Background(), Config{Provider: "none"})

	require.True(t, result.Success)
	require.Equal(t, int64(0), result.Latency)
	// No blocking call, must come back immediately.
	require.Less(t, time.Since(start), 5*time.Millisecond)
}

func TestTestConnection_SimulatedProbe(t *testing.T) {
	m := testManager(t)

	result := m.TestConnection(context.Background(), Config{
		Provider:         "planetscale",
		ConnectionString: "mysql://u:p@aws.connect.psdb.cloud/db",
	})

	require.True(t, result.Success)
	require.Equal(t, "planetscale connection successful", result.Message)
	require.GreaterOrEqual(t, result.Latency, int64(10))
}

func TestTestConnection_SimulatedProbeCancelled(t *testing.T) {
	m := NewManager(nil, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result := m.TestConnection(ctx, Config{Provider: "custom", BaseURL: "https://x", APIKey: "k"})

	require.False(t, result.Success)
	require.Contains(t, result.Message, "context deadline exceeded")
	require.Less(t, result.Latency, int64(1000))
}

func TestTestConnection_UnknownProvider(t *testing.T) {
	m := testManager(t)

	result := m.TestConnection(context.Background(), Config{Provider: "dynamo"})

	require.False(t, result.Success)
	require.Contains(t, result.Message, "Unknown provider")
}

func TestTestConnection_TursoUnreachable(t *testing.T) {
	m := testManager(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result := m.TestConnection(ctx, Config{
		Provider:    "turso",
		DatabaseURL: "libsql://does-not-exist.invalid",
		AuthToken:   "bogus",
	})

	require.False(t, result.Success)
	require.NotEmpty(t, result.Message)
}
