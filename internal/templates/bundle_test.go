package templates

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

func testBundle() *Bundle {
	return NewBundle(fstest.MapFS{
		"hello.txt":  {Data: []byte("Hello ${NAME}, version ${{ mod_version }}. Keep ${UNKNOWN}.")},
		"twice.txt":  {Data: []byte("${A}${A}${B}")},
		"static.bin": {Data: []byte{0x89, 'P', 'N', 'G'}},
	})
}

func TestRender(t *testing.T) {
	b := testBundle()

	got, err := b.Render("hello.txt", Substitutions{
		Var("NAME"):         "Steve",
		Prop("mod_version"): "0.1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Steve, version 0.1.0. Keep ${UNKNOWN}.", got)
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	got, err := testBundle().Render("twice.txt", Substitutions{Var("A"): "x", Var("B"): "y"})
	require.NoError(t, err)
	assert.Equal(t, "xxy", got)
}

func TestRenderValuesAreLiteral(t *testing.T) {
	// A value that looks like a placeholder is not expanded again.
	got, err := testBundle().Render("twice.txt", Substitutions{Var("A"): Var("B"), Var("B"): "y"})
	require.NoError(t, err)
	assert.Equal(t, "${B}${B}y", got)
}

func TestRenderMissingTemplate(t *testing.T) {
	_, err := testBundle().Render("nope.txt", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
	assert.True(t, errors.Is(err, oerrors.ErrTemplate))
	assert.Contains(t, err.Error(), "nope.txt")
}

type brokenFS struct{}

func (brokenFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestReadAssetReadError(t *testing.T) {
	_, err := NewBundle(brokenFS{}).ReadAsset("hello.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateRead))
	assert.False(t, errors.Is(err, ErrTemplateNotFound))
	assert.True(t, errors.Is(err, oerrors.ErrTemplate))
}

func TestTokens(t *testing.T) {
	tokens, err := testBundle().Tokens("hello.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"${NAME}", "${UNKNOWN}", "${{ mod_version }}"}, tokens)
}

func TestUnresolved(t *testing.T) {
	subs := Substitutions{Var("NAME"): "Steve"}
	assert.Equal(t, []string{"${UNKNOWN}", "${{ mod_version }}"},
		subs.Unresolved("Hello ${NAME}, version ${{ mod_version }}. Keep ${UNKNOWN}."))
}

func TestApplyEmpty(t *testing.T) {
	assert.Equal(t, "${A}", Substitutions(nil).Apply("${A}"))
}
