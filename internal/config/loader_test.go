package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
catalog:
  metaURL: https://meta.example.test/v2
  modrinthURL: https://modrinth.example.test/v2
  timeout: 30s
defaults:
  modName: Tinker
  author: Steve
  license: Apache-2.0
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "https://meta.example.test/v2", cfg.Catalog.MetaURL)
		assert.Equal(t, "https://modrinth.example.test/v2", cfg.Catalog.ModrinthURL)
		assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, "Tinker", cfg.Defaults.ModName)
		assert.Equal(t, "Steve", cfg.Defaults.Author)
		assert.Equal(t, "Apache-2.0", cfg.Defaults.License)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Catalog.MetaURL)
		assert.Empty(t, cfg.Defaults.Author)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("FABRIC_INIT_META_URL", "https://env.example.test/v2")
		t.Setenv("FABRIC_INIT_AUTHOR", "Alex")
		t.Setenv("FABRIC_INIT_TIMEOUT", "5s")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		content := `
catalog:
  metaURL: https://file.example.test/v2
defaults:
  author: Steve
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.test/v2", cfg.Catalog.MetaURL)
		assert.Equal(t, "Alex", cfg.Defaults.Author)
		assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("catalog: [unterminated"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("defaults:\n  author: Steve\n"), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, DefaultMetaURL, cfg.Catalog.MetaURL)
	assert.Equal(t, DefaultModrinthURL, cfg.Catalog.ModrinthURL)
	assert.Equal(t, DefaultFabricAPIProject, cfg.Catalog.FabricAPIProject)
	assert.Equal(t, "MyMod", cfg.Defaults.ModName)
	assert.Equal(t, "0.1.0", cfg.Defaults.Version)
	assert.Equal(t, "MIT", cfg.Defaults.License)
	assert.Equal(t, "Steve", cfg.Defaults.Author)
	assert.Zero(t, cfg.Catalog.Timeout)
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	exists, err := ConfigFileExists(filepath.Join(tmpDir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)

	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
