package output

import (
	"encoding/json"
	"io"

	"which-portal/core/types"
)

// ItineraryJSON is the JSON shape of a plan. Fuel amounts are strings
// fixed at one decimal.
type ItineraryJSON struct {
	PlanID         string          `json:"plan_id,omitempty"`
	Route          types.RouteKind `json:"route"`
	Portal         *types.Portal   `json:"portal,omitempty"`
	Start          types.Point     `json:"start"`
	Target         types.Point     `json:"target"`
	TravelDistance float64         `json:"travel_distance"`
	TravelFuel     string          `json:"travel_fuel"`
	ActivationCost string          `json:"activation_cost"`
	TotalFuel      string          `json:"total_fuel"`
	Candidates     []CandidateJSON `json:"candidates,omitempty"`
}

// CandidateJSON is the JSON shape of one evaluated route
type CandidateJSON struct {
	Route          types.RouteKind `json:"route"`
	Portal         string          `json:"portal,omitempty"`
	Origin         types.Point     `json:"origin"`
	Distance       float64         `json:"distance"`
	Fuel           string          `json:"fuel"`
	ActivationCost string          `json:"activation_cost"`
	Total          string          `json:"total"`
	Reachable      bool            `json:"reachable"`
	Chosen         bool            `json:"chosen,omitempty"`
}

// ToJSON converts a plan result to its JSON shape
func ToJSON(result *PlanResult, explain bool) ItineraryJSON {
	it := result.Itinerary
	out := ItineraryJSON{
		PlanID:         result.PlanID,
		Route:          it.Kind(),
		Portal:         it.Portal,
		Start:          it.Start,
		Target:         it.Target,
		TravelDistance: it.TravelDistance,
		TravelFuel:     it.TravelFuel.StringFixed(1),
		ActivationCost: it.ActivationCost.StringFixed(1),
		TotalFuel:      it.TotalFuel.StringFixed(1),
	}
	if !explain {
		return out
	}

	out.Candidates = make([]CandidateJSON, len(result.Candidates))
	for i, c := range result.Candidates {
		cj := CandidateJSON{
			Route:          c.Kind(),
			Origin:         c.Origin,
			Distance:       c.Distance,
			Fuel:           c.Fuel.StringFixed(1),
			ActivationCost: c.ActivationCost.StringFixed(1),
			Total:          c.Total.StringFixed(1),
			Reachable:      c.Reachable,
			Chosen:         i == result.Chosen,
		}
		if c.Portal != nil {
			cj.Portal = c.Portal.Name
		}
		out.Candidates[i] = cj
	}
	return out
}

// JSONFormatter writes the plan as indented JSON
type JSONFormatter struct {
	Explain bool
}

// Format implements Formatter
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render implements Formatter
func (f *JSONFormatter) Render(w io.Writer, result *PlanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(result, f.Explain))
}
