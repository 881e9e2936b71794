package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

func TestNewLocation(t *testing.T) {
	t.Run("new directory", func(t *testing.T) {
		cwd := t.TempDir()

		loc, err := NewLocation("My Mod! 2", cwd)
		require.NoError(t, err)

		assert.Equal(t, "MyMod2", loc.Name)
		assert.Equal(t, "MyMod2", filepath.Base(loc.Path))
		assert.True(t, filepath.IsAbs(loc.Path))
		assert.False(t, loc.Exists)

		_, err = os.Stat(loc.Path)
		assert.True(t, os.IsNotExist(err), "resolving must not create the directory")
	})

	t.Run("existing directory", func(t *testing.T) {
		cwd := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(cwd, "MyMod"), 0o755))

		loc, err := NewLocation("MyMod", cwd)
		require.NoError(t, err)
		assert.True(t, loc.Exists)
	})

	t.Run("raw path is a regular file", func(t *testing.T) {
		cwd := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(cwd, "notes.txt"), []byte("x"), 0o644))

		_, err := NewLocation("notes.txt", cwd)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), "existing file")
	})

	t.Run("sanitized path is a regular file", func(t *testing.T) {
		cwd := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(cwd, "MyMod"), []byte("x"), 0o644))

		_, err := NewLocation("My Mod", cwd)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("nothing left after sanitizing", func(t *testing.T) {
		_, err := NewLocation("!!!", t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("non-ascii letters", func(t *testing.T) {
		_, err := NewLocation("Café", t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "alphanumeric")
	})
}
