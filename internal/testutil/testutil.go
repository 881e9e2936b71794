// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// Path prefixes CatalogServer mounts the two catalog APIs under.
const (
	MetaPrefix     = "/meta"
	ModrinthPrefix = "/modrinth"
)

// CatalogBodies are the default responses of CatalogServer, keyed by path.
// Minecraft 1.20.5 is the only stable release with mappings and an API build.
var CatalogBodies = map[string]string{
	MetaPrefix + "/versions/game":                `[{"version":"1.20.5","stable":true},{"version":"24w14a","stable":false}]`,
	MetaPrefix + "/versions/yarn":                `[{"gameVersion":"1.20.5","version":"1.20.5+build.1","stable":true}]`,
	MetaPrefix + "/versions/loader":              `[{"version":"0.15.11","stable":true}]`,
	ModrinthPrefix + "/project/P7dR8mSH/version": `[{"version_number":"0.98.0+1.20.5","game_versions":["1.20.5"]}]`,
}

// CatalogServer starts a server answering the Fabric meta and Modrinth
// endpoints with CatalogBodies. Handlers in overrides replace the default
// for their path. The server is closed when the test ends.
func CatalogServer(t *testing.T, overrides map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for path, body := range CatalogBodies {
		if h, ok := overrides[path]; ok {
			mux.HandleFunc(path, h)
			continue
		}
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
