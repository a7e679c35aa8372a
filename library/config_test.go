package library

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"SMARTLIB_MAX_BOOKS", "SMARTLIB_MAX_REQUESTS", "SMARTLIB_MAX_ACTIONS", "SMARTLIB_MAX_ISSUED", "SMARTLIB_LOG_LEVEL", "SMARTLIB_SEED"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Limits{}, cfg.Limits())
	assert.Empty(t, cfg.SeedFile)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SMARTLIB_MAX_BOOKS", "10")
	t.Setenv("SMARTLIB_MAX_REQUESTS", "4")
	t.Setenv("SMARTLIB_MAX_ACTIONS", "100")
	t.Setenv("SMARTLIB_MAX_ISSUED", "3")
	t.Setenv("SMARTLIB_LOG_LEVEL", "debug")
	t.Setenv("SMARTLIB_SEED", "books.txt")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Limits{Books: 10, Requests: 4, Actions: 100, Issued: 3}, cfg.Limits())
	assert.Equal(t, "books.txt", cfg.SeedFile)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("SMARTLIB_MAX_BOOKS", "many")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "parse env")

	cfg := Config{LogLevel: "loud"}
	_, err = cfg.Level()
	assert.Error(t, err)
}
