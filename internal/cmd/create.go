package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fabricinit/cli/internal/catalog"
	"github.com/fabricinit/cli/internal/config"
	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/input"
	"github.com/fabricinit/cli/internal/output"
	"github.com/fabricinit/cli/internal/scaffold"
)

const (
	buildHint = "To build your mod, run `./gradlew build` in the project directory."
	wikiHint  = "For more information, visit https://fabricmc.net/wiki/tutorial:setup"
)

// Collaborators of the wizard; tests replace them.
var (
	newPrompter = func(accessible bool) (input.Prompter, error) {
		if !accessible && !output.IsInteractive() {
			return nil, &oerrors.DetailError{
				Type:    "validation error",
				Message: "fabric-init needs an interactive terminal",
				Hint:    "Run it from a terminal, or pass --accessible to answer the prompts line by line",
				Cause:   oerrors.ErrValidation,
			}
		}
		return &input.HuhPrompter{Accessible: accessible}, nil
	}

	newCatalogSource = func(cfg config.CatalogConfig) input.CatalogSource {
		return catalog.NewClientFromConfig(cfg)
	}

	newRepoInitializer = func() scaffold.RepoInitializer {
		return nil
	}

	collectorOptions = func() []input.Option {
		return nil
	}
)

var accessibleFlag bool

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&accessibleFlag, "accessible", false, "Use plain line-based prompts (works without a terminal)")
}

func runCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if configLoadErr != nil {
		return exitWith(cmd, oerrors.NewValidationError(configLoadErr.Error(), GetConfigPath(),
			"Run 'fabric-init config vet' for details"))
	}
	cfg := GetConfig()

	prompter, err := newPrompter(accessibleFlag)
	if err != nil {
		return exitWith(cmd, err)
	}

	opts := append([]input.Option{
		input.WithDefaults(cfg.Defaults),
		input.WithOutput(out),
	}, collectorOptions()...)
	collector := input.NewCollector(prompter, newCatalogSource(cfg.Catalog), opts...)

	answers, err := collector.Collect(ctx)
	if err != nil {
		return exitWith(cmd, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, input.RenderSummary(answers))

	var mopts []scaffold.Option
	if repo := newRepoInitializer(); repo != nil {
		mopts = append(mopts, scaffold.WithRepoInitializer(repo))
	}

	output.Debug("creating project", "path", answers.Location.Path, "modId", answers.ModID())
	res, err := scaffold.New(mopts...).Materialize(ctx, answers)
	if err != nil {
		return exitWith(cmd, err)
	}

	printSuccess(out, res)
	return nil
}

func printSuccess(w io.Writer, res *scaffold.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.FormatCheckmark("Project created successfully!"))
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderFileTree(filepath.Base(res.Path), res.Descriptions()))
	if res.GitInitialized {
		fmt.Fprintln(w, output.GetStyles().Muted.Render("Git repository initialized with an initial commit."))
	}
	fmt.Fprintln(w)
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, res.Path); err == nil && rel != "." {
			fmt.Fprintf(w, "  cd %s\n\n", output.FormatNoun(rel))
		}
	}
	fmt.Fprintln(w, buildHint)
	fmt.Fprintln(w, wikiHint)
}
