package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/gzipkit/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "compression:\n  level: 9\n  chunk_size_kib: 32\n")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Compression.Level)
	require.Equal(t, 32, cfg.Compression.ChunkSizeKiB)
}

func TestLoadConfigInvalidLevel(t *testing.T) {
	path := writeConfig(t, "compression:\n  level: 12\n")

	_, err := config.LoadConfig(path)
	require.ErrorContains(t, err, "compression level")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.Equal(t, 6, cfg.Compression.Level)
	require.Equal(t, 16, cfg.Compression.ChunkSizeKiB)
}
