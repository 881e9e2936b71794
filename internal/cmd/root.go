// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fabricinit/cli/internal/config"
	"github.com/fabricinit/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE
	loadedConfig  *config.Config
	configLoadErr error
	configPath    config.ResolveConfigPathResult
)

// NewRootCmd creates the root command for fabric-init.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fabric-init",
		Short: "Scaffold a new Fabric mod project",
		Long: `fabric-init interactively creates a ready-to-build Fabric mod project.

It fetches the current Minecraft, Yarn, Fabric Loader and Fabric API
versions, asks a few questions about the mod, and writes a Gradle project
with a main class, fabric.mod.json and the Gradle wrapper scripts.

Running without a subcommand starts the interactive wizard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runCreate,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: FABRIC_INIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	addCreateFlags(rootCmd)

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return err
	}
	configPath = resolved

	cfg, err := config.NewLoader().LoadWithDefaults(resolved.ConfigPath)
	if err != nil {
		// Commands that don't need the config still run; the wizard reports it.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	loadedConfig = cfg
	configLoadErr = err

	timestamps := config.ResolveTimestamps(cmd.Flags().Changed("timestamps"), timestampsFlag, cfg)
	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: output.BoolPtr(timestamps.Value.(bool)),
	})

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", resolved.ConfigPath,
			"source", resolved.Source,
			"metaURL", cfg.Catalog.MetaURL,
			"modrinthURL", cfg.Catalog.ModrinthURL,
		)
		config.LogResolvedValues(timestamps)
	}

	return nil
}

// GetConfig returns the loaded configuration, falling back to defaults.
func GetConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.DefaultConfig()
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if configPath.ConfigPath != "" {
		return configPath.ConfigPath
	}
	return configFlag
}
