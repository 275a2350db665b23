package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	assert_ "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/alanbriolat/ytmeta/fetch"
)

func TestLoad_Defaults(t *testing.T) {
	assert := assert_.New(t)

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(fetch.DefaultUserAgent, config.UserAgent)
	assert.Equal(fetch.DefaultLanguage, config.Language)
	assert.Equal(fetch.DefaultTimeout, config.Timeout)
	assert.Equal("", config.CachePath)
	assert.Equal(24*time.Hour, config.CacheMaxAge)
	assert.Equal(128, config.MemoryCacheSize)
	level, err := config.Level()
	assert.NoError(err)
	assert.Equal(zapcore.InfoLevel, level)
	assert.Len(config.FetchOptions(), 3)
}

func TestLoad_File(t *testing.T) {
	assert := assert_.New(t)

	path := filepath.Join(t.TempDir(), "ytmeta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
language: de-DE
timeout: 5s
cache_path: /tmp/pages.db
cache_max_age: 1h30m
memory_cache_size: 16
log_level: debug
`), 0600))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal("de-DE", config.Language)
	assert.Equal(5*time.Second, config.Timeout)
	assert.Equal("/tmp/pages.db", config.CachePath)
	assert.Equal(90*time.Minute, config.CacheMaxAge)
	assert.Equal(16, config.MemoryCacheSize)
	assert.Equal(fetch.DefaultUserAgent, config.UserAgent)

	// The environment wins over the file.
	t.Setenv("YTMETA_LANGUAGE", "fr-FR")
	t.Setenv("YTMETA_MEMORY_CACHE_SIZE", "0")
	config, err = Load(path)
	require.NoError(t, err)
	assert.Equal("fr-FR", config.Language)
	assert.Equal(0, config.MemoryCacheSize)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert_.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)

	path := filepath.Join(t.TempDir(), "ytmeta.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level": "loud"}`), 0600))
	_, err = Load(path)
	assert.Error(err)

	require.NoError(t, os.WriteFile(path, []byte(`{"memory_cache_size": -1}`), 0600))
	_, err = Load(path)
	assert.Error(err)
}

func TestLoadDotEnv(t *testing.T) {
	assert := assert_.New(t)

	assert.NoError(loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("YTMETA_DOTENV_TEST=from-file\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("YTMETA_DOTENV_TEST") })
	assert.NoError(loadDotEnv(path))
	assert.Equal("from-file", os.Getenv("YTMETA_DOTENV_TEST"))
}
