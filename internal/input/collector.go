package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fabricinit/cli/internal/catalog"
	"github.com/fabricinit/cli/internal/config"
	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/output"
	"github.com/fabricinit/cli/internal/project"
)

// CatalogSource provides the version catalogs.
type CatalogSource interface {
	FetchAll(ctx context.Context) (*catalog.Catalog, error)
}

// Collector runs the prompt pipeline.
type Collector struct {
	prompter Prompter
	source   CatalogSource
	defaults config.DefaultsConfig
	cwd      string
	out      io.Writer
	fetch    func(ctx context.Context, action func(context.Context) error) error
}

// Option configures a Collector.
type Option func(*Collector)

// WithDefaults sets prompt defaults.
func WithDefaults(d config.DefaultsConfig) Option {
	return func(c *Collector) { c.defaults = d }
}

// WithWorkingDir sets the directory mod names are resolved against.
func WithWorkingDir(dir string) Option {
	return func(c *Collector) { c.cwd = dir }
}

// WithOutput sets where section headers and warnings are written.
func WithOutput(w io.Writer) Option {
	return func(c *Collector) { c.out = w }
}

// WithoutSpinner fetches catalogs without drawing a spinner.
func WithoutSpinner() Option {
	return func(c *Collector) {
		c.fetch = func(ctx context.Context, action func(context.Context) error) error {
			return action(ctx)
		}
	}
}

// NewCollector creates a Collector.
func NewCollector(p Prompter, source CatalogSource, opts ...Option) *Collector {
	c := &Collector{
		prompter: p,
		source:   source,
		defaults: config.DefaultConfig().Defaults,
		out:      os.Stdout,
		fetch: func(ctx context.Context, action func(context.Context) error) error {
			return output.RunWithSpinner(ctx, action, output.WithTitle("Fetching Fabric versions..."))
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cwd == "" {
		c.cwd, _ = os.Getwd()
	}
	return c
}

// state is the input of each step: the answers collected so far.
type state struct {
	catalog *catalog.Catalog
	answers project.AnswerSet
}

type step struct {
	name string
	run  func(ctx context.Context, c *Collector, s *state) error
}

// Collect fetches the catalogs and runs every step in order.
func (c *Collector) Collect(ctx context.Context) (project.AnswerSet, error) {
	s := &state{}

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return project.AnswerSet{}, oerrors.ErrCancelled
		}
		if err := st.run(ctx, c, s); err != nil {
			if errors.Is(err, oerrors.ErrCancelled) {
				return project.AnswerSet{}, err
			}
			return project.AnswerSet{}, fmt.Errorf("%s: %w", st.name, err)
		}
	}

	return s.answers, nil
}

// ask prompts until the answer passes validation. An empty answer
// selects the default.
func (c *Collector) ask(q Question) (string, error) {
	for {
		v, err := c.prompter.Input(q)
		if err != nil {
			return "", err
		}

		v = strings.TrimSpace(v)
		if v == "" {
			v = q.Default
		}

		if q.Validate == nil {
			return v, nil
		}
		verr := q.Validate(v)
		if verr == nil {
			return v, nil
		}
		if !errors.Is(verr, oerrors.ErrValidation) {
			return "", verr
		}
		c.warn(verr)
	}
}

// choose asks a select question. An empty option list is fatal.
func (c *Collector) choose(title, what, minecraft string, values []string) (string, error) {
	if len(values) == 0 {
		if minecraft != "" {
			return "", fmt.Errorf("no %s available for Minecraft %s: %w", what, minecraft, oerrors.ErrValidation)
		}
		return "", fmt.Errorf("no %s available: %w", what, oerrors.ErrValidation)
	}

	choices := make([]Choice, len(values))
	for i, v := range values {
		choices[i] = Choice{Label: v, Value: v}
	}
	return c.prompter.Select(title, choices, values[0])
}

func (c *Collector) section(s output.Section) {
	fmt.Fprintln(c.out, output.FormatSection(s))
}

func (c *Collector) warn(err error) {
	msg := strings.TrimSuffix(err.Error(), ": "+oerrors.ErrValidation.Error())
	fmt.Fprintln(c.out, output.GetStyles().Warning.Render("⚠ "+msg))
}

// required rejects blank answers.
func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s cannot be empty: %w", field, oerrors.ErrValidation)
		}
		return nil
	}
}
