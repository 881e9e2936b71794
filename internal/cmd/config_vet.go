package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabricinit/cli/internal/config"
	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the fabric-init configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values satisfy the configuration schema (URLs, identifiers, timeout)

The config path is resolved using precedence:
  --config flag > FABRIC_INIT_CONFIG env > ~/.fabric-init/config.yaml

Examples:
  # Validate default configuration
  fabric-init config vet

  # Validate custom config path
  fabric-init config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, _ []string) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return oerrors.Wrap(oerrors.ErrValidation, "could not resolve config path")
	}

	configPath, err := config.ExpandPath(pathResult.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'fabric-init config init' to create default configuration",
			Cause:    oerrors.ErrValidation,
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("loading config schema: %w", err)
	}

	if err := validator.ValidateFile(configPath); err != nil {
		return oerrors.NewValidationError(err.Error(), configPath,
			"Fix the listed fields or regenerate with 'fabric-init config init --force'")
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+output.FormatNoun(configPath)))
	return nil
}
