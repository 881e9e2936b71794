package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

type fakeRunner struct {
	calls  []string
	failAt int
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if f.failAt > 0 && len(f.calls) == f.failAt {
		return f.err
	}
	return nil
}

func TestInitRunsStepsInOrder(t *testing.T) {
	runner := &fakeRunner{}

	err := New(runner).Init(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, []string{"git init", "git add .", "git commit -m init"}, runner.calls)
}

func TestInitStopsAtFirstFailure(t *testing.T) {
	tests := []struct {
		failAt   int
		wantStep string
	}{
		{1, "git init"},
		{2, "git add ."},
		{3, "git commit -m init"},
	}

	for _, tt := range tests {
		t.Run(tt.wantStep, func(t *testing.T) {
			cause := errors.New("exit status 128")
			runner := &fakeRunner{failAt: tt.failAt, err: cause}

			err := New(runner).Init(context.Background(), t.TempDir())

			require.Error(t, err)
			assert.Len(t, runner.calls, tt.failAt, "no step runs after a failure")

			var cmdErr *CommandFailedError
			require.True(t, errors.As(err, &cmdErr))
			assert.Equal(t, tt.wantStep, cmdErr.Step)
			assert.True(t, errors.Is(err, cause))
			assert.True(t, errors.Is(err, oerrors.ErrCommand))
			assert.Equal(t, oerrors.ExitCommandFailed, oerrors.ExitCodeFromError(err))
			assert.Contains(t, err.Error(), tt.wantStep)
		})
	}
}

func TestExecRunnerLaunchFailure(t *testing.T) {
	var stderr bytes.Buffer
	runner := ExecRunner{Stdout: &stderr, Stderr: &stderr}

	err := runner.Run(context.Background(), t.TempDir(), "fabric-init-no-such-binary")
	assert.Error(t, err)
}

func TestInitWithRealGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), nil, 0o644))
	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hi\n"), 0o644))

	var out bytes.Buffer
	err := New(ExecRunner{Stdout: &out, Stderr: &out}).Init(context.Background(), dir)
	require.NoError(t, err, out.String())

	assert.DirExists(t, filepath.Join(dir, ".git"))

	log, err := exec.Command("git", "-C", dir, "log", "--format=%s").Output()
	require.NoError(t, err)
	assert.Equal(t, "init", strings.TrimSpace(string(log)))
}
