package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "empty config is valid", mutate: func(c *Config) { *c = Config{} }},
		{
			name:    "non-http meta url",
			mutate:  func(c *Config) { c.Catalog.MetaURL = "ftp://meta.example.test" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Catalog.Timeout = -1 },
			wantErr: true,
		},
		{
			name:    "mod name with spaces",
			mutate:  func(c *Config) { c.Defaults.ModName = "My Mod" },
			wantErr: true,
		},
		{
			name:    "project id with punctuation",
			mutate:  func(c *Config) { c.Catalog.FabricAPIProject = "fabric-api!" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := v.Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.NotEmpty(t, verrs)
		})
	}
}

func TestValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("defaults:\n  author: Steve\n"), 0o644))
	assert.NoError(t, v.ValidateFile(good))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("catalog:\n  modrinthURL: not-a-url\n"), 0o644))
	err = v.ValidateFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modrinthURL")
}
