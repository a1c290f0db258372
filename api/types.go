// Package api - API types for route planning
// These types define the contract for the /v1 endpoints.
package api

import (
	"which-portal/core/catalog"
	"which-portal/core/output"
)

// PlanRequest is the body of POST /v1/plan
type PlanRequest struct {
	// From is the start coordinate, e.g. "175.3/145.4"
	From string `json:"from" binding:"required"`

	// To is the target coordinate
	To string `json:"to" binding:"required"`

	// Explain includes every evaluated candidate
	Explain bool `json:"explain,omitempty"`
}

// PlanResponse is returned by POST /v1/plan
type PlanResponse struct {
	RequestID string               `json:"request_id"`
	Itinerary output.ItineraryJSON `json:"itinerary"`
	Text      string               `json:"text"`
}

// PortalsResponse is returned by GET /v1/portals
type PortalsResponse struct {
	Count   int                `json:"count"`
	Portals []PortalEntry      `json:"portals,omitempty"`
	Nearest []catalog.Neighbor `json:"nearest,omitempty"`
}

// PortalEntry is one catalog row
type PortalEntry struct {
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Error codes
const (
	CodeInvalidJSON = "INVALID_JSON"
	CodeParseError  = "PARSE_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeInternal    = "INTERNAL_ERROR"
)
