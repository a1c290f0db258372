package types

import "github.com/shopspring/decimal"

// RouteKind identifies how the traveler reaches the target
type RouteKind string

const (
	// RouteDirect is plain hyperspace travel from the start point
	RouteDirect RouteKind = "direct"

	// RoutePortal is travel through a quasi-space portal
	RoutePortal RouteKind = "portal"
)

// Portal is a named teleportation point with a fixed destination
type Portal struct {
	// Name identifies the portal (e.g. "Q521 / 514")
	Name string `json:"name"`

	// Destination is where the traveler emerges
	Destination Point `json:"destination"`
}

// Candidate is one evaluated way of reaching the target
type Candidate struct {
	// Portal is nil for direct travel
	Portal *Portal

	// Origin is where hyperspace travel to the target begins
	Origin Point

	// ActivationCost is the flat fee for using the portal (zero for direct)
	ActivationCost decimal.Decimal

	// Distance is the Euclidean distance from Origin to the target
	Distance float64

	// Fuel is the travel fuel, sold in whole tenths
	Fuel decimal.Decimal

	// Total is ActivationCost + Fuel
	Total decimal.Decimal

	// Reachable is false when Distance is not a finite number
	Reachable bool
}

// Kind returns the route kind of the candidate
func (c Candidate) Kind() RouteKind {
	if c.Portal == nil {
		return RouteDirect
	}
	return RoutePortal
}

// Label returns "direct" or the portal name
func (c Candidate) Label() string {
	if c.Portal == nil {
		return string(RouteDirect)
	}
	return c.Portal.Name
}

// Itinerary is the chosen route with its full cost breakdown
type Itinerary struct {
	// Portal is the portal used, nil for direct travel
	Portal *Portal

	// Start is the point the traveler departs from
	Start Point

	// Target is the destination of the trip
	Target Point

	// TravelDistance is the hyperspace leg length
	TravelDistance float64

	// TravelFuel is the fuel spent on the hyperspace leg
	TravelFuel decimal.Decimal

	// ActivationCost is the portal fee (zero for direct)
	ActivationCost decimal.Decimal

	// TotalFuel is ActivationCost + TravelFuel
	TotalFuel decimal.Decimal
}

// UsesPortal reports whether the itinerary goes through a portal
func (i Itinerary) UsesPortal() bool {
	return i.Portal != nil
}

// Kind returns the route kind of the itinerary
func (i Itinerary) Kind() RouteKind {
	if i.Portal == nil {
		return RouteDirect
	}
	return RoutePortal
}
