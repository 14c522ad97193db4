package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultSnapshotPath, cfg.Snapshot.Path)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "charnet init")
	})

	t.Run("defaults applied over partial file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
		content := "snapshot:\n  path: custom/net.sqlite\n"
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "custom/net.sqlite", cfg.Snapshot.Path)
		assert.Equal(t, ".", cfg.Export.Dir, "unset fields keep defaults")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("snapshot: ["), 0644))

		_, err := Load(dir)
		require.Error(t, err)
	})

	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteDefault(dir))
		t.Setenv("CHARNET_SNAPSHOT", "elsewhere.sqlite")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "elsewhere.sqlite", cfg.Snapshot.Path)
	})
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	// A second init must not clobber the existing config.
	err := WriteDefault(dir)
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Export.Dir = filepath.Join(dir, "exports")
	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Export.Dir, loaded.Export.Dir)
}
