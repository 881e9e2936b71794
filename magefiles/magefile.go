//go:build mage

// Package main contains Mage build targets for fabric-init.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "fabric-init"
	cmdPkg     = "./cmd/fabric-init"
	versionPkg = "github.com/fabricinit/cli/internal/version"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the CLI binary into bin/ with version information.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./internal/...")
}

// E2E builds the binary and runs the end-to-end tests.
func E2E() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "./tests/e2e/...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs lint and unit tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Install installs the binary into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), cmdPkg)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && v != "" {
			version = v
		} else {
			version = "v0.0.0-dev"
		}
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}

	flags := []string{
		"-s", "-w",
		"-X", versionPkg + ".Version=" + version,
		"-X", versionPkg + ".GitCommit=" + commit,
		"-X", versionPkg + ".BuildDate=" + time.Now().UTC().Format(time.RFC3339),
	}
	return strings.Join(flags, " ")
}
