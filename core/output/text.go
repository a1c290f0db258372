package output

import (
	"fmt"
	"io"

	"which-portal/core/coords"
	"which-portal/core/types"
	"which-portal/core/ui"
)

// RenderItinerary returns the itinerary as text: two lines for direct
// travel, four when a portal is used. Every line ends with a newline.
func RenderItinerary(it types.Itinerary) string {
	target := coords.FormatPoint(it.Target)
	total := fmt.Sprintf("Total fuel cost: %s units of fuel\n", it.TotalFuel.StringFixed(1))

	if !it.UsesPortal() {
		return fmt.Sprintf("Travel %.1f directly through hyperspace to %s (cost: %s units of fuel)\n",
			it.TravelDistance, target, it.TravelFuel.StringFixed(1)) + total
	}

	return fmt.Sprintf("Use quasi-space portal at %s (cost: %s units of fuel to use portal spawner)\n",
		it.Portal.Name, it.ActivationCost.StringFixed(1)) +
		fmt.Sprintf("Emerge in hyperspace at %s\n", coords.FormatPoint(it.Portal.Destination)) +
		fmt.Sprintf("Travel %.1f to %s (cost: %s units of fuel)\n",
			it.TravelDistance, target, it.TravelFuel.StringFixed(1)) +
		total
}

// TextFormatter writes the itinerary text, optionally followed by the
// candidate breakdown
type TextFormatter struct {
	Explain bool
	NoColor bool
}

// Format implements Formatter
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render implements Formatter
func (f *TextFormatter) Render(w io.Writer, result *PlanResult) error {
	if _, err := io.WriteString(w, RenderItinerary(result.Itinerary)); err != nil {
		return err
	}
	if !f.Explain || len(result.Candidates) == 0 {
		return nil
	}

	uw := ui.NewWriter(w, f.NoColor)
	uw.Println("")
	uw.Header(fmt.Sprintf("Candidates considered (%d)", len(result.Candidates)))
	CandidateTable(uw, result.Candidates, result.Chosen).Render()
	return nil
}

// CandidateTable lays out candidates with the chosen one highlighted
func CandidateTable(w *ui.Writer, candidates []types.Candidate, chosen int) *ui.Table {
	table := w.NewTable("", "ROUTE", "ORIGIN", "DISTANCE", "FUEL", "PORTAL FEE", "TOTAL").
		AlignRight(3, 4, 5, 6)

	for i, c := range candidates {
		cells := []string{
			"",
			c.Label(),
			coords.FormatPoint(c.Origin),
			fmt.Sprintf("%.1f", c.Distance),
			c.Fuel.StringFixed(1),
			c.ActivationCost.StringFixed(1),
			c.Total.StringFixed(1),
		}
		if !c.Reachable {
			cells[4], cells[6] = "-", "-"
		}
		if i == chosen {
			cells[0] = "*"
			table.AddHighlightedRow(cells...)
			continue
		}
		table.AddRow(cells...)
	}
	return table
}
