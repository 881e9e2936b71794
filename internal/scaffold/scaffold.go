// Package scaffold materializes a Fabric mod project on disk.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/gitrepo"
	"github.com/fabricinit/cli/internal/output"
	"github.com/fabricinit/cli/internal/project"
	"github.com/fabricinit/cli/internal/templates"
)

// RepoInitializer creates a repository in a generated project.
type RepoInitializer interface {
	Init(ctx context.Context, dir string) error
}

// Result describes a generated project.
type Result struct {
	// Path is the absolute project directory.
	Path string

	// Files are the written files, relative to Path and slash-separated, in write order.
	Files []string

	// GitInitialized is true when a repository was created.
	GitInitialized bool
}

// Materializer turns an AnswerSet into a project tree. If any step after the
// initial cleanup fails, the project directory is removed before returning.
type Materializer struct {
	bundle    *templates.Bundle
	repo      RepoInitializer
	removeAll func(string) error
	steps     []step
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithBundle sets the template bundle.
func WithBundle(b *templates.Bundle) Option {
	return func(m *Materializer) { m.bundle = b }
}

// WithRepoInitializer sets the repository initializer used when InitGit is set.
func WithRepoInitializer(r RepoInitializer) Option {
	return func(m *Materializer) { m.repo = r }
}

// New creates a Materializer using the embedded bundle and the git executable.
func New(opts ...Option) *Materializer {
	m := &Materializer{
		bundle:    templates.Default(),
		repo:      gitrepo.New(nil),
		removeAll: os.RemoveAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.steps = defaultSteps()
	return m
}

// job carries the state shared by the steps of one run.
type job struct {
	m           *Materializer
	answers     project.AnswerSet
	root        string
	javaVersion string
	files       []string
	git         bool
}

type step struct {
	name string
	run  func(ctx context.Context, j *job) error
}

// Materialize generates the project described by a.
func (m *Materializer) Materialize(ctx context.Context, a project.AnswerSet) (res *Result, err error) {
	root := a.Location.Path
	if root == "" || !filepath.IsAbs(root) {
		return nil, fmt.Errorf("project path %q must be absolute: %w", root, oerrors.ErrValidation)
	}

	javaVersion, err := project.JavaVersion(a.MinecraftVersion)
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(root); statErr == nil {
		output.Debug("removing existing project directory", "path", root)
		if rmErr := m.removeAll(root); rmErr != nil {
			return nil, fmt.Errorf("removing existing directory %s: %v: %w", root, rmErr, oerrors.ErrFilesystem)
		}
	}

	defer func() {
		if err == nil {
			return
		}
		res = nil
		output.Warn("rolling back", "path", root, "error", err)
		if rmErr := m.removeAll(root); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("removing %s after failure: %v: %w", root, rmErr, oerrors.ErrFilesystem))
		}
	}()

	j := &job{m: m, answers: a, root: root, javaVersion: javaVersion}
	for _, s := range m.steps {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", s.name, oerrors.ErrCancelled)
		}
		output.Debug("scaffold step", "step", s.name)
		if err := s.run(ctx, j); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return &Result{Path: root, Files: j.files, GitInitialized: j.git}, nil
}

// mkdir creates a directory relative to the project root.
func (j *job) mkdir(rel string) error {
	p := filepath.Join(j.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(p, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %v: %w", p, err, oerrors.ErrFilesystem)
	}
	return nil
}

// write writes a file relative to the project root, creating parents.
func (j *job) write(rel string, data []byte, perm os.FileMode) error {
	if err := j.mkdir(path.Dir(rel)); err != nil {
		return err
	}

	p := filepath.Join(j.root, filepath.FromSlash(rel))
	if err := os.WriteFile(p, data, perm); err != nil {
		return fmt.Errorf("writing %s: %v: %w", p, err, oerrors.ErrFilesystem)
	}
	// WriteFile keeps the mode of an existing file and applies umask.
	if err := os.Chmod(p, perm); err != nil {
		return fmt.Errorf("setting mode of %s: %v: %w", p, err, oerrors.ErrFilesystem)
	}

	output.Debug("created file", "path", rel)
	j.files = append(j.files, rel)
	return nil
}

// render renders a template and writes the result.
func (j *job) render(asset, rel string, subs templates.Substitutions) error {
	content, err := j.m.bundle.Render(asset, subs)
	if err != nil {
		return err
	}
	if unresolved := subs.Unresolved(content); len(unresolved) > 0 {
		output.Debug("unresolved placeholders", "file", rel, "tokens", unresolved)
	}
	return j.write(rel, []byte(content), fileMode)
}

// copy copies a static asset.
func (j *job) copy(asset, rel string, perm os.FileMode) error {
	data, err := j.m.bundle.ReadAsset(asset)
	if err != nil {
		return err
	}
	return j.write(rel, data, perm)
}
