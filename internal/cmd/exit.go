package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/output"
)

// exitWith reports err on the command's error stream and wraps it in an
// ExitError carrying the matching exit code.
func exitWith(cmd *cobra.Command, err error) error {
	code := oerrors.ExitCodeFromError(err)
	w := cmd.ErrOrStderr()

	if errors.Is(err, oerrors.ErrCancelled) {
		fmt.Fprintln(w, output.GetStyles().Warning.Render("Cancelled."))
	} else {
		fmt.Fprintln(w, output.GetStyles().Error.Render(errorText(err)))
	}
	output.Debug("command failed", "code", code, "reason", oerrors.ExitCodeName(code))

	exitErr := oerrors.NewExitError(err, code)
	exitErr.Printed = true
	return exitErr
}

func errorText(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return strings.TrimRight(detail.Error(), "\n")
	}
	return "Error: " + err.Error()
}
