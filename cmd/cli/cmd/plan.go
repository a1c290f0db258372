// Package cmd - route planning command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"which-portal/core/catalog"
	"which-portal/core/engine"
	"which-portal/core/output"
	"which-portal/internal/errors"
	"which-portal/internal/logging"
)

// routeArgs checks for exactly: from <coord> to <coord>
func routeArgs(args []string) bool {
	return len(args) == 4 && args[0] == "from" && args[2] == "to"
}

func runPlan(cmd *cobra.Command, opts *options, args []string) error {
	if !routeArgs(args) {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return errors.Usage("expected: from <coord> to <coord>")
	}

	formatter, err := output.NewRegistry(output.Options{
		Explain: opts.cfg.Output.Explain,
		NoColor: opts.cfg.Output.NoColor,
	}).Get(opts.cfg.Output.Format)
	if err != nil {
		return err
	}

	eng := engine.New(catalog.Default(), logging.Logger)
	result, err := eng.Plan(cmd.Context(), engine.PlanRequest{From: args[1], To: args[3]})
	if err != nil {
		return err
	}

	return formatter.Render(cmd.OutOrStdout(), result)
}
