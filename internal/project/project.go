// Package project holds the answer model for a new Fabric mod and the
// pure helpers that derive names, paths and versions from it.
package project

import (
	"fmt"
	"strings"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

// DSL is the Gradle build-script language of the generated project.
type DSL string

const (
	DSLGroovy DSL = "groovy"
	DSLKotlin DSL = "kotlin"
)

// DSLs lists the supported build-script languages in prompt order.
var DSLs = []DSL{DSLGroovy, DSLKotlin}

// String implements fmt.Stringer.
func (d DSL) String() string {
	return string(d)
}

// BuildFile returns the build script file name.
func (d DSL) BuildFile() string {
	if d == DSLKotlin {
		return "build.gradle.kts"
	}
	return "build.gradle"
}

// SettingsFile returns the settings script file name.
func (d DSL) SettingsFile() string {
	if d == DSLKotlin {
		return "settings.gradle.kts"
	}
	return "settings.gradle"
}

// ParseDSL parses a DSL name case-insensitively.
func ParseDSL(s string) (DSL, error) {
	switch DSL(strings.ToLower(strings.TrimSpace(s))) {
	case DSLGroovy:
		return DSLGroovy, nil
	case DSLKotlin:
		return DSLKotlin, nil
	default:
		return "", fmt.Errorf("unknown gradle DSL %q (expected groovy or kotlin): %w", s, oerrors.ErrValidation)
	}
}

// Environment is the side a mod runs on, as written to fabric.mod.json.
type Environment string

const (
	EnvironmentUniversal Environment = "*"
	EnvironmentClient    Environment = "client"
	EnvironmentServer    Environment = "server"
)

// Environments lists the mod environments in prompt order.
var Environments = []Environment{EnvironmentUniversal, EnvironmentClient, EnvironmentServer}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

// Label returns a human-readable label for prompts.
func (e Environment) Label() string {
	switch e {
	case EnvironmentClient:
		return "client (client side only)"
	case EnvironmentServer:
		return "server (dedicated server only)"
	default:
		return "* (both client and server)"
	}
}

// AnswerSet is the complete set of answers needed to materialize a project.
// It is built once by the input collector and passed by value afterwards.
type AnswerSet struct {
	Location    Location
	MavenGroup  string
	DSL         DSL
	Environment Environment

	MinecraftVersion string
	YarnVersion      string
	LoaderVersion    string
	FabricAPIVersion string

	ModVersion  string
	Description string
	Author      string
	License     string

	InitGit bool
}

// ModName returns the sanitized mod name, also used as the entry-point class name.
func (a AnswerSet) ModName() string {
	return a.Location.Name
}

// ModID returns the lowercase mod identifier.
func (a AnswerSet) ModID() string {
	return SanitizeModID(a.Location.Name)
}

// PackagePath returns the slash-separated source path of the Maven group.
func (a AnswerSet) PackagePath() string {
	return PackagePath(a.MavenGroup)
}

// MainClass returns the fully qualified entry-point class.
func (a AnswerSet) MainClass() string {
	return a.MavenGroup + "." + a.Location.Name
}

// EnvironmentOrDefault returns the environment, defaulting to universal.
func (a AnswerSet) EnvironmentOrDefault() Environment {
	if a.Environment == "" {
		return EnvironmentUniversal
	}
	return a.Environment
}
