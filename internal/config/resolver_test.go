package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	tests := []struct {
		name       string
		flag       string
		env        string
		wantPath   string
		wantSource ConfigSource
	}{
		{name: "flag wins", flag: "/flag.yaml", env: "/env.yaml", wantPath: "/flag.yaml", wantSource: SourceFlag},
		{name: "env over default", env: "/env.yaml", wantPath: "/env.yaml", wantSource: SourceEnv},
		{name: "default", wantPath: paths.ConfigFile, wantSource: SourceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FABRIC_INIT_CONFIG", tt.env)

			result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: tt.flag})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, result.ConfigPath)
			assert.Equal(t, tt.wantSource, result.Source)
		})
	}

	t.Run("records shadowed env", func(t *testing.T) {
		t.Setenv("FABRIC_INIT_CONFIG", "/env.yaml")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "/env.yaml", result.Shadowed[SourceEnv])
		assert.Equal(t, paths.ConfigFile, result.Shadowed[SourceDefault])
	})
}

func TestResolveTimestamps(t *testing.T) {
	off := false

	t.Run("default on", func(t *testing.T) {
		rv := ResolveTimestamps(false, false, &Config{})
		assert.Equal(t, true, rv.Value)
		assert.Equal(t, SourceDefault, rv.Source)
	})

	t.Run("config value", func(t *testing.T) {
		rv := ResolveTimestamps(false, false, &Config{Log: LogConfig{Timestamps: &off}})
		assert.Equal(t, false, rv.Value)
		assert.Equal(t, SourceConfig, rv.Source)
	})

	t.Run("flag shadows config", func(t *testing.T) {
		rv := ResolveTimestamps(true, true, &Config{Log: LogConfig{Timestamps: &off}})
		assert.Equal(t, true, rv.Value)
		assert.Equal(t, SourceFlag, rv.Source)
		assert.Equal(t, false, rv.Shadowed[SourceConfig])
	})

	t.Run("nil config", func(t *testing.T) {
		rv := ResolveTimestamps(false, false, nil)
		assert.Equal(t, true, rv.Value)
	})
}
