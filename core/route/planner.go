// Package route implements the route planner.
//
// For a start and a target point the planner prices direct hyperspace
// travel and one portal-assisted route per catalog entry, then keeps the
// cheapest. Fuel is sold in whole tenths and always rounded up.
package route

import (
	"math"

	"github.com/shopspring/decimal"

	"which-portal/core/catalog"
	"which-portal/core/types"
)

// PortalCost is the flat fee for using any portal spawner
var PortalCost = decimal.NewFromFloat(10.0)

// CeilToTenth rounds v up to the next multiple of 0.1.
// Values already on a tenth are returned unchanged.
func CeilToTenth(v decimal.Decimal) decimal.Decimal {
	return v.RoundCeil(1)
}

// FuelFor returns the fuel needed to travel distance: one unit per ten
// distance units, rounded up to a tenth. ok is false when distance is not a
// finite number.
func FuelFor(distance float64) (fuel decimal.Decimal, ok bool) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return decimal.Zero, false
	}
	return CeilToTenth(decimal.NewFromFloat(distance).Shift(-1)), true
}

// Evaluate prices every way of reaching target: direct travel first, then
// each portal in catalog order. A nil catalog means direct travel only.
func Evaluate(start, target types.Point, portals *catalog.Catalog) []types.Candidate {
	candidates := make([]types.Candidate, 0, 1+portals.Len())
	candidates = append(candidates, newCandidate(nil, start, decimal.Zero, target))

	portals.Range(func(_ int, p types.Portal) bool {
		portal := p
		candidates = append(candidates, newCandidate(&portal, p.Destination, PortalCost, target))
		return true
	})

	return candidates
}

// Select returns the index of the cheapest candidate. Only a strictly
// lower total displaces the current best, so the earliest candidate wins
// ties. Unreachable candidates never displace a reachable one.
func Select(candidates []types.Candidate) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		c, b := candidates[i], candidates[best]
		if !c.Reachable {
			continue
		}
		if !b.Reachable || c.Total.LessThan(b.Total) {
			best = i
		}
	}
	return best
}

// Plan picks the cheapest route from start to target
func Plan(start, target types.Point, portals *catalog.Catalog) types.Itinerary {
	candidates := Evaluate(start, target, portals)
	return ItineraryFor(start, target, candidates[Select(candidates)])
}

// ItineraryFor builds the itinerary for a chosen candidate
func ItineraryFor(start, target types.Point, c types.Candidate) types.Itinerary {
	return types.Itinerary{
		Portal:         c.Portal,
		Start:          start,
		Target:         target,
		TravelDistance: c.Distance,
		TravelFuel:     c.Fuel,
		ActivationCost: c.ActivationCost,
		TotalFuel:      c.Total,
	}
}

func newCandidate(portal *types.Portal, origin types.Point, activation decimal.Decimal, target types.Point) types.Candidate {
	distance := origin.DistanceTo(target)
	fuel, ok := FuelFor(distance)
	return types.Candidate{
		Portal:         portal,
		Origin:         origin,
		ActivationCost: activation,
		Distance:       distance,
		Fuel:           fuel,
		Total:          activation.Add(fuel),
		Reachable:      ok,
	}
}
