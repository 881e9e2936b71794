package output

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh/spinner"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action while a spinner is shown.
// Without a TTY the action runs inline and no spinner is drawn.
// A cancelled context is reported as oerrors.ErrCancelled.
func RunWithSpinner(ctx context.Context, action func(ctx context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return asCancelled(action(ctx))
	}

	var actionErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		actionErr = action(ctx)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() {
			<-done
		}).
		Run()

	// The spinner returns early on cancellation; the action result is only
	// safe to read once it has finished.
	<-done

	if actionErr != nil {
		return asCancelled(actionErr)
	}
	if err := ctx.Err(); err != nil {
		return asCancelled(err)
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}

func asCancelled(err error) error {
	if errors.Is(err, context.Canceled) && !errors.Is(err, oerrors.ErrCancelled) {
		return fmt.Errorf("%w: %w", oerrors.ErrCancelled, err)
	}
	return err
}
