package project

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

// Location is where a project will be generated.
type Location struct {
	// Name is the sanitized mod name (ASCII letters and digits only).
	Name string

	// Path is the absolute project directory.
	Path string

	// Exists reports whether Path was an existing directory when resolved.
	Exists bool
}

// NewLocation resolves raw user input against cwd.
// The sanitized name becomes the directory name. Input naming an existing
// regular file, either verbatim or after sanitizing, is rejected.
func NewLocation(raw, cwd string) (Location, error) {
	name := SanitizeModName(raw)

	if raw != "" {
		if isRegularFile(resolve(cwd, raw)) {
			return Location{}, fmt.Errorf("'%s' is an existing file, please provide a valid mod name: %w", raw, oerrors.ErrValidation)
		}
	}

	if err := ValidateModName(name); err != nil {
		return Location{}, err
	}

	path, err := filepath.Abs(resolve(cwd, name))
	if err != nil {
		return Location{}, fmt.Errorf("resolving %s: %w", name, oerrors.ErrFilesystem)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return Location{}, fmt.Errorf("'%s' is an existing file, please provide a valid mod name: %w", name, oerrors.ErrValidation)
	case err == nil:
		if real, err := filepath.EvalSymlinks(path); err == nil {
			path = real
		}
		return Location{Name: name, Path: path, Exists: true}, nil
	case os.IsNotExist(err):
		return Location{Name: name, Path: path}, nil
	default:
		return Location{}, fmt.Errorf("checking %s: %v: %w", path, err, oerrors.ErrFilesystem)
	}
}

func resolve(cwd, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
