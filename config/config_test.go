package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquespec/config"
	"github.com/katalvlaran/cliquespec/search"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cliquespec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.Search.Params.MaxOrder)
	assert.Equal(t, int64(1000), cfg.Search.ProgressEvery)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FileOverlay(t *testing.T) {
	path := writeFile(t, `
search:
  max_order: 8
  min_increase: 1
  workers: 3
  seed: 99
  timeout: 90s
  epsilon: 1e-6
engine:
  catalog_limit: 512
log:
  level: debug
  format: json
archive:
  dir: /tmp/cx
metrics:
  addr: ":9100"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Search.Params.MaxOrder)
	assert.Equal(t, 1, cfg.Search.Params.MinIncrease)
	assert.Equal(t, 3, cfg.Search.Params.MaxIncrease, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.Equal(t, int64(99), cfg.Search.Seed)
	assert.Equal(t, 90*time.Second, cfg.Search.Timeout)
	assert.InDelta(t, 1e-6, cfg.Search.Params.Epsilon, 1e-12)
	assert.Equal(t, 512, cfg.Engine.CatalogLimit)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/cx", cfg.Archive.Dir)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
}

func TestLoad_EmptyPathAndEmptyFile(t *testing.T) {
	_, err := config.Load("")
	require.NoError(t, err)

	_, err = config.Load(writeFile(t, ""))
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "search:\n  bogus: 1\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "search:\n  workers: 0\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, search.ErrInvalidParams)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CLIQUESPEC_WORKERS":     "5",
		"CLIQUESPEC_SEED":        "-3",
		"CLIQUESPEC_TIMEOUT":     "2m",
		"CLIQUESPEC_LOG_LEVEL":   "warn",
		"CLIQUESPEC_ARCHIVE_DIR": "cx",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := config.Default()
	require.NoError(t, config.ApplyEnv(&cfg, lookup))
	assert.Equal(t, 5, cfg.Search.Workers)
	assert.Equal(t, int64(-3), cfg.Search.Seed)
	assert.Equal(t, 2*time.Minute, cfg.Search.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "cx", cfg.Archive.Dir)

	env["CLIQUESPEC_MAX_TRIALS"] = "lots"
	require.ErrorIs(t, config.ApplyEnv(&cfg, lookup), config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"bad level":      func(c *config.Config) { c.Log.Level = "loud" },
		"bad format":     func(c *config.Config) { c.Log.Format = "xml" },
		"negative limit": func(c *config.Config) { c.Engine.CatalogLimit = -1 },
		"negative size":  func(c *config.Config) { c.Log.MaxSizeMB = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := config.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = config.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}
