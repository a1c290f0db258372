// Package engine provides the API-primary route planning engine.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"which-portal/core/catalog"
	"which-portal/core/coords"
	"which-portal/core/output"
	"which-portal/core/route"
	"which-portal/core/types"
	"which-portal/internal/errors"
)

// DefaultNearestLimit is used when a nearest-portal query gives no limit
const DefaultNearestLimit = 5

// Engine plans routes over one catalog
type Engine struct {
	catalog *catalog.Catalog
	index   *catalog.Index
	logger  *zap.Logger
}

// PlanRequest holds the raw coordinate strings of a trip
type PlanRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// New creates an engine. A nil logger discards logs.
func New(c *catalog.Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog: c,
		index:   catalog.NewIndex(c),
		logger:  logger,
	}
}

// Catalog returns the engine's portal catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Plan parses both coordinates and plans the trip
func (e *Engine) Plan(ctx context.Context, req PlanRequest) (*output.PlanResult, error) {
	start, err := coords.ParseCoordinates(req.From)
	if err != nil {
		return nil, err
	}
	target, err := coords.ParseCoordinates(req.To)
	if err != nil {
		return nil, err
	}
	return e.PlanPoints(ctx, start, target)
}

// PlanPoints plans the trip between two already parsed points
func (e *Engine) PlanPoints(ctx context.Context, start, target types.Point) (*output.PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal("planning cancelled", err)
	}

	candidates := route.Evaluate(start, target, e.catalog)
	chosen := route.Select(candidates)
	result := &output.PlanResult{
		PlanID:     uuid.NewString(),
		Itinerary:  route.ItineraryFor(start, target, candidates[chosen]),
		Candidates: candidates,
		Chosen:     chosen,
	}

	e.logger.Debug("route planned",
		zap.String("plan_id", result.PlanID),
		zap.String("start", coords.FormatPoint(start)),
		zap.String("target", coords.FormatPoint(target)),
		zap.String("route", candidates[chosen].Label()),
		zap.Int("candidates", len(candidates)),
		zap.String("total_fuel", result.Itinerary.TotalFuel.StringFixed(1)),
	)
	return result, nil
}

// Nearest returns the portals closest to a coordinate string
func (e *Engine) Nearest(ctx context.Context, near string, limit int) ([]catalog.Neighbor, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal("lookup cancelled", err)
	}
	p, err := coords.ParseCoordinates(near)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultNearestLimit
	}
	return e.index.Nearest(p, limit), nil
}
