// Package cmd provides the CLI commands for which-portal.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"which-portal/internal/config"
	"which-portal/internal/errors"
	"which-portal/internal/logging"
)

const version = "0.1.0"

// usageLine is printed when the route arguments have the wrong shape
const usageLine = "Usage: which-portal from <start_x>/<start_y> to <target_x>/<target_y>"

// options holds flag values and the resolved configuration
type options struct {
	cfgFile string
	envFile string
	verbose bool
	format  string
	explain bool
	noColor bool

	cfg *config.Config
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "which-portal from <start_x>/<start_y> to <target_x>/<target_y>",
		Short: "Find the cheapest route to a point, direct or through a quasi-space portal",
		Long: `which-portal compares direct hyperspace travel with travel through each
quasi-space portal and prints the cheapest itinerary.

Coordinates are DDD.D/DDD.D, optionally with spaces around the slash.

Examples:
  which-portal from 175.3/145.4 to 468.1/091.6
  which-portal from "175.3 / 145.4" to "468.1 / 091.6"
  which-portal --explain from 000.0/000.0 to 011.2/940.9
  which-portal portals --near 500.0/500.0`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (.hcl or .json)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with WHICH_PORTAL_* settings")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.StringVarP(&opts.format, "format", "f", "", "output format (text, json)")
	flags.BoolVar(&opts.explain, "explain", false, "show every candidate route that was priced")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colors in tables")

	root.AddCommand(newVersionCmd(), newConfigCmd(opts), newPortalsCmd(opts))
	return root
}

// setup resolves configuration and initializes logging
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(o.cfgFile, o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("explain") {
		cfg.Output.Explain = o.explain
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = o.noColor
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	config.Set(cfg)
	o.cfg = cfg
	return nil
}

// Execute runs the CLI with the given arguments
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}

	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	logging.Sync()
	if err != nil && !errors.IsType(err, errors.TypeUsage) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

// Main is the process entry point; it returns the exit status
func Main() int {
	return errors.ExitCode(Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "which-portal version %s\n", version)
		},
	}
}
