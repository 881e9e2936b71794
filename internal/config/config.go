// Package config provides configuration loading and management.
package config

import (
	"time"
)

// Default catalog endpoints.
const (
	DefaultMetaURL          = "https://meta.fabricmc.net/v2"
	DefaultModrinthURL      = "https://api.modrinth.com/v2"
	DefaultFabricAPIProject = "P7dR8mSH"
)

// CatalogConfig contains remote version catalog settings.
type CatalogConfig struct {
	// MetaURL is the Fabric meta API base (game, yarn and loader versions).
	// Env: FABRIC_INIT_META_URL
	MetaURL string `mapstructure:"metaURL" json:"metaURL,omitempty" yaml:"metaURL,omitempty"`

	// ModrinthURL is the Modrinth API base used for Fabric API versions.
	// Env: FABRIC_INIT_MODRINTH_URL
	ModrinthURL string `mapstructure:"modrinthURL" json:"modrinthURL,omitempty" yaml:"modrinthURL,omitempty"`

	// FabricAPIProject is the Modrinth project id of Fabric API.
	FabricAPIProject string `mapstructure:"fabricAPIProject" json:"fabricAPIProject,omitempty" yaml:"fabricAPIProject,omitempty"`

	// Timeout bounds each catalog request. Zero leaves the HTTP client default (none).
	// Env: FABRIC_INIT_TIMEOUT
	Timeout time.Duration `mapstructure:"timeout" json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// DefaultsConfig holds prompt defaults.
type DefaultsConfig struct {
	ModName string `mapstructure:"modName" json:"modName,omitempty" yaml:"modName,omitempty"`
	Version string `mapstructure:"version" json:"version,omitempty" yaml:"version,omitempty"`
	License string `mapstructure:"license" json:"license,omitempty" yaml:"license,omitempty"`

	// Author pre-fills the author prompt. Env: FABRIC_INIT_AUTHOR
	Author string `mapstructure:"author" json:"author,omitempty" yaml:"author,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the fabric-init configuration file (~/.fabric-init/config.yaml).
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog" json:"catalog" yaml:"catalog"`
	Defaults DefaultsConfig `mapstructure:"defaults" json:"defaults" yaml:"defaults"`
	Log      LogConfig      `mapstructure:"log" json:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `fabric-init config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			MetaURL:          DefaultMetaURL,
			ModrinthURL:      DefaultModrinthURL,
			FabricAPIProject: DefaultFabricAPIProject,
		},
		Defaults: DefaultsConfig{
			ModName: "MyMod",
			Version: "0.1.0",
			License: "MIT",
		},
	}
}

// WithDefaults returns a copy of c with empty fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	out := *c

	if out.Catalog.MetaURL == "" {
		out.Catalog.MetaURL = d.Catalog.MetaURL
	}
	if out.Catalog.ModrinthURL == "" {
		out.Catalog.ModrinthURL = d.Catalog.ModrinthURL
	}
	if out.Catalog.FabricAPIProject == "" {
		out.Catalog.FabricAPIProject = d.Catalog.FabricAPIProject
	}
	if out.Defaults.ModName == "" {
		out.Defaults.ModName = d.Defaults.ModName
	}
	if out.Defaults.Version == "" {
		out.Defaults.Version = d.Defaults.Version
	}
	if out.Defaults.License == "" {
		out.Defaults.License = d.Defaults.License
	}

	return &out
}
