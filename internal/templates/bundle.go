package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

var (
	// ErrTemplateNotFound is returned when an asset is missing from the bundle.
	ErrTemplateNotFound = fmt.Errorf("template not found: %w", oerrors.ErrTemplate)

	// ErrTemplateRead is returned when an asset exists but cannot be read.
	ErrTemplateRead = fmt.Errorf("template read failed: %w", oerrors.ErrTemplate)
)

// tokenRegex matches ${NAME} and ${{ name }} placeholders.
var tokenRegex = regexp.MustCompile(`\$\{\{\s*[a-z_]+\s*\}\}|\$\{[A-Z_]+\}`)

// Bundle is a read-only set of template assets.
type Bundle struct {
	fsys fs.FS
}

// NewBundle creates a bundle over fsys. Asset names are slash-separated
// paths relative to the root of fsys.
func NewBundle(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys}
}

// BuildScript returns the build script asset for a DSL directory and file name.
func BuildScript(dsl, file string) string {
	return fmt.Sprintf(dslDirectoryFmt, dsl, file)
}

// ReadAsset returns the raw bytes of an asset.
func (b *Bundle) ReadAsset(name string) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("%s: %v: %w", name, err, ErrTemplateRead)
	}
	return data, nil
}

// Has reports whether the bundle contains name.
func (b *Bundle) Has(name string) bool {
	_, err := fs.Stat(b.fsys, name)
	return err == nil
}

// Render reads a template and replaces every placeholder present in subs.
// Placeholders without a substitution are left as they are.
func (b *Bundle) Render(name string, subs Substitutions) (string, error) {
	data, err := b.ReadAsset(name)
	if err != nil {
		return "", err
	}
	return subs.Apply(string(data)), nil
}

// Tokens returns the distinct placeholders in a template, sorted.
func (b *Bundle) Tokens(name string) ([]string, error) {
	data, err := b.ReadAsset(name)
	if err != nil {
		return nil, err
	}
	return FindTokens(string(data)), nil
}

// FindTokens returns the distinct placeholders in text, sorted.
func FindTokens(text string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range tokenRegex.FindAllString(text, -1) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	sort.Strings(tokens)
	return tokens
}

// Substitutions maps full placeholder tokens to their values.
type Substitutions map[string]string

// Var returns the ${NAME} placeholder for name.
func Var(name string) string {
	return "${" + name + "}"
}

// Prop returns the ${{ name }} placeholder for name.
func Prop(name string) string {
	return "${{ " + name + " }}"
}

// Apply replaces each placeholder in text with its value.
func (s Substitutions) Apply(text string) string {
	if len(s) == 0 {
		return text
	}

	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, s[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Unresolved returns the placeholders of text that s does not cover.
func (s Substitutions) Unresolved(text string) []string {
	var out []string
	for _, tok := range FindTokens(text) {
		if _, ok := s[tok]; !ok {
			out = append(out, tok)
		}
	}
	return out
}
