// Package cmd - configuration inspection
package cmd

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		Long: `Print the configuration after applying, in order: defaults, --config
file, --env-file and WHICH_PORTAL_* environment variables, command line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd, opts.cfg)
		},
	}
}
