// Package cmd - catalog inspection commands
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"which-portal/core/catalog"
	"which-portal/core/coords"
	"which-portal/core/engine"
	"which-portal/core/route"
	"which-portal/core/ui"
	"which-portal/internal/logging"
)

func newPortalsCmd(opts *options) *cobra.Command {
	var (
		near  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "portals",
		Short: "List the quasi-space portal catalog",
		Long: `List every portal with its destination.

With --near, list the portals whose destinations are closest to a point,
together with the fuel a trip from each destination would cost.

Examples:
  which-portal portals
  which-portal portals --near 500.0/500.0 --limit 3
  which-portal portals --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := engine.New(catalog.Default(), logging.Logger)
			if near == "" {
				return listPortals(cmd, opts, eng.Catalog())
			}
			neighbors, err := eng.Nearest(cmd.Context(), near, limit)
			if err != nil {
				return err
			}
			return listNearest(cmd, opts, neighbors)
		},
	}

	cmd.Flags().StringVar(&near, "near", "", "only show portals near this coordinate")
	cmd.Flags().IntVar(&limit, "limit", engine.DefaultNearestLimit, "number of portals shown with --near")
	return cmd
}

func listPortals(cmd *cobra.Command, opts *options, c *catalog.Catalog) error {
	portals := c.Portals()
	if opts.cfg.Output.Format == "json" {
		return writeJSON(cmd, portals)
	}

	w := ui.NewWriter(cmd.OutOrStdout(), opts.cfg.Output.NoColor)
	w.Header(fmt.Sprintf("Quasi-space portals (%d)", len(portals)))
	table := w.NewTable("NAME", "DESTINATION")
	for _, p := range portals {
		table.AddRow(p.Name, coords.FormatPoint(p.Destination))
	}
	table.Render()
	return nil
}

func listNearest(cmd *cobra.Command, opts *options, neighbors []catalog.Neighbor) error {
	if opts.cfg.Output.Format == "json" {
		return writeJSON(cmd, neighbors)
	}

	w := ui.NewWriter(cmd.OutOrStdout(), opts.cfg.Output.NoColor)
	if len(neighbors) == 0 {
		w.Warning("no portals found")
		return nil
	}

	w.Header(fmt.Sprintf("Nearest portals (%d)", len(neighbors)))
	table := w.NewTable("NAME", "DESTINATION", "DISTANCE", "FUEL", "TOTAL VIA PORTAL").AlignRight(2, 3, 4)
	for _, n := range neighbors {
		fuel, _ := route.FuelFor(n.Distance)
		table.AddRow(
			n.Portal.Name,
			coords.FormatPoint(n.Portal.Destination),
			fmt.Sprintf("%.1f", n.Distance),
			fuel.StringFixed(1),
			route.PortalCost.Add(fuel).StringFixed(1),
		)
	}
	table.Render()
	return nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
