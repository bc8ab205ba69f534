package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PROBE_TIMEOUT", "PROBE_CONCURRENCY", "GRPC_ADDR", "PDFTOTEXT_BIN"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, 30*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, 4, cfg.Analysis.Concurrency)
	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, "pdftotext", cfg.Tools.Pdftotext)
	assert.Equal(t, "mutool", cfg.Tools.Mutool)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PROBE_TIMEOUT", "5s")
	t.Setenv("PROBE_CONCURRENCY", "8")
	t.Setenv("PDFTOTEXT_BIN", "/usr/local/bin/pdftotext")
	t.Setenv("DB_MAX_CONNS", "50")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, 8, cfg.Analysis.Concurrency)
	assert.Equal(t, "/usr/local/bin/pdftotext", cfg.Tools.Pdftotext)
	assert.Equal(t, int32(50), cfg.Database.MaxConns)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PROBE_TIMEOUT", "not-a-duration")
	t.Setenv("PROBE_CONCURRENCY", "many")

	cfg := LoadConfig()
	assert.Equal(t, 30*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, 4, cfg.Analysis.Concurrency)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Analysis: AnalysisConfig{Timeout: time.Second, Concurrency: 1}}
	require.NoError(t, cfg.Validate())

	cfg.Analysis.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg.Analysis.Timeout = time.Second
	cfg.Analysis.Concurrency = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateServer(t *testing.T) {
	cfg := &Config{
		Analysis: AnalysisConfig{Timeout: time.Second, Concurrency: 1},
		Server:   ServerConfig{GRPCAddr: ":8080"},
	}
	err := cfg.ValidateServer()
	require.Error(t, err, "daemon cannot run without a database")
	assert.Contains(t, err.Error(), "DB_URL")

	cfg.Database.DSN = "postgres://localhost/probe"
	require.NoError(t, cfg.ValidateServer())

	cfg.Server.GRPCAddr = ""
	assert.Error(t, cfg.ValidateServer())
}
