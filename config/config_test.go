package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogPath)
	assert.Equal(t, 10, cfg.LogMaxSizeMB)
	assert.Equal(t, "", cfg.OutputDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MMG_LOG_LEVEL", "debug")
	t.Setenv("MMG_LOG_MAX_SIZE_MB", "25")
	t.Setenv("MMG_LOG_COMPRESS", "true")
	t.Setenv("MMG_OUTPUT_DIR", "/tmp/out")

	cfg := Load()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.LogMaxSizeMB)
	assert.True(t, cfg.LogCompress)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("MMG_LOG_MAX_BACKUPS", "many")

	cfg := Load()
	assert.Equal(t, 3, cfg.LogMaxBackups)
}
