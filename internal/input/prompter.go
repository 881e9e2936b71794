// Package input collects the answers for a new project through an ordered
// sequence of interactive prompts.
package input

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

// Question is a free-text prompt.
type Question struct {
	Title       string
	Default     string
	Placeholder string

	// Validate is called with the (trimmed) answer. Errors wrapping
	// ErrValidation cause the question to be asked again.
	Validate func(string) error
}

// Choice is one option of a select prompt.
type Choice struct {
	Label string
	Value string
}

// Prompter asks the user questions.
type Prompter interface {
	Input(q Question) (string, error)
	Select(title string, choices []Choice, def string) (string, error)
	Confirm(title string, def bool) (bool, error)
}

// HuhPrompter implements Prompter with charmbracelet/huh fields.
type HuhPrompter struct {
	// Accessible switches huh to plain line-based prompts.
	Accessible bool
}

// NewHuhPrompter creates a prompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// Input implements Prompter.
func (p *HuhPrompter) Input(q Question) (string, error) {
	value := q.Default
	field := huh.NewInput().
		Title(q.Title).
		Placeholder(q.Placeholder).
		Value(&value)
	if q.Validate != nil {
		field = field.Validate(func(s string) error {
			if s == "" && q.Default != "" {
				s = q.Default
			}
			return q.Validate(s)
		})
	}

	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Prompter.
func (p *HuhPrompter) Select(title string, choices []Choice, def string) (string, error) {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label, c.Value)
	}

	value := def
	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Height(12).
		Value(&value)

	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(title string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(field); err != nil {
		return false, err
	}
	return value, nil
}

func (p *HuhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithAccessible(p.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return oerrors.ErrCancelled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}
