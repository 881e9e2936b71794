// Package gitrepo initializes a git repository in a generated project.
package gitrepo

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/output"
)

// Runner runs an external command in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// CommandFailedError reports the git step that failed.
type CommandFailedError struct {
	// Step is the failing invocation, e.g. "git add .".
	Step string
	Err  error
}

// Error implements the error interface.
func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

// Unwrap returns both the command error and ErrCommand.
func (e *CommandFailedError) Unwrap() []error {
	return []error{e.Err, oerrors.ErrCommand}
}

// CommitMessage is the message of the initial commit.
const CommitMessage = "init"

// Initializer runs git init, git add . and git commit in order.
type Initializer struct {
	runner Runner
	git    string
}

// New creates an Initializer. A nil runner uses ExecRunner.
func New(runner Runner) *Initializer {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Initializer{runner: runner, git: "git"}
}

// Steps returns the git argument lists in execution order.
func Steps() [][]string {
	return [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", CommitMessage},
	}
}

// Init creates a repository in dir and commits everything in it.
// It stops at the first failing step.
func (i *Initializer) Init(ctx context.Context, dir string) error {
	for _, args := range Steps() {
		step := i.git + " " + strings.Join(args, " ")
		output.Debug("running", "command", step, "dir", dir)

		if err := i.runner.Run(ctx, dir, i.git, args...); err != nil {
			return &CommandFailedError{Step: step, Err: err}
		}
	}
	return nil
}
