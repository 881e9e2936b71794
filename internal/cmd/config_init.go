package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fabricinit/cli/internal/config"
	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/output"
)

const configHeader = "# fabric-init configuration\n# Environment variables prefixed with FABRIC_INIT_ override these values.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a fabric-init configuration file with default values.

The file is written to ~/.fabric-init/config.yaml unless --config or
FABRIC_INIT_CONFIG points elsewhere.

Examples:
  # Create default configuration
  fabric-init config init

  # Overwrite an existing configuration
  fabric-init config init --force`,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	path, err := config.ExpandPath(pathResult.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "already exists",
			Message:  "configuration file already exists",
			Location: path,
			Hint:     "Use --force to overwrite",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("securing config file: %w", err)
	}

	output.Debug("config written", "path", path, "source", pathResult.Source)
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file created: "+output.FormatNoun(path)))
	return nil
}
