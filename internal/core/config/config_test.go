package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/tmp/data")
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, 1, cfg.RowHeight)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: gruvbox\nrow_height: 2\nrow_spacing: 1\nmouse: false\n"), 0o644))

	cfg, err := Load(path, "/tmp/data")
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, 2, cfg.RowHeight)
	assert.Equal(t, 1, cfg.RowSpacing)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, 3, cfg.RowPitch())
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon-zebra\n"), 0o644))

	_, err := Load(path, "/tmp/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
}

func TestLoad_RejectsBadRowGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("row_spacing: -1\n"), 0o644))

	_, err := Load(path, "/tmp/data")
	require.Error(t, err)
}
