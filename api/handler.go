// Package api - HTTP handlers for route planning
// Handlers wrap the engine - they contain NO planning logic.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"which-portal/core/coords"
	"which-portal/core/engine"
	"which-portal/core/output"
	"which-portal/internal/errors"
)

// Handler serves the /v1 endpoints
type Handler struct {
	engine *engine.Engine
}

// NewHandler creates a new handler
func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

// Plan handles POST /v1/plan
func (h *Handler) Plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeInvalidJSON, err.Error())
		return
	}

	result, err := h.engine.Plan(c.Request.Context(), engine.PlanRequest{From: req.From, To: req.To})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	result.PlanID = requestID(c)

	c.JSON(http.StatusOK, PlanResponse{
		RequestID: result.PlanID,
		Itinerary: output.ToJSON(result, req.Explain),
		Text:      output.RenderItinerary(result.Itinerary),
	})
}

// Portals handles GET /v1/portals[?near=<coord>&limit=n]
func (h *Handler) Portals(c *gin.Context) {
	near := c.Query("near")
	if near == "" {
		portals := h.engine.Catalog().Portals()
		entries := make([]PortalEntry, len(portals))
		for i, p := range portals {
			entries[i] = PortalEntry{
				Name:        p.Name,
				Destination: coords.FormatPoint(p.Destination),
				X:           p.Destination.X,
				Y:           p.Destination.Y,
			}
		}
		c.JSON(http.StatusOK, PortalsResponse{Count: len(entries), Portals: entries})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, http.StatusBadRequest, CodeParseError, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	nearest, err := h.engine.Nearest(c.Request.Context(), near, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, PortalsResponse{Count: len(nearest), Nearest: nearest})
}

// Portal handles GET /v1/portals/:name
func (h *Handler) Portal(c *gin.Context) {
	p, err := h.engine.Catalog().Lookup(c.Param("name"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, PortalEntry{
		Name:        p.Name,
		Destination: coords.FormatPoint(p.Destination),
		X:           p.Destination.X,
		Y:           p.Destination.Y,
	})
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.IsType(err, errors.TypeParsing):
		writeError(c, http.StatusBadRequest, CodeParseError, err.Error())
	case errors.IsType(err, errors.TypeNotFound):
		writeError(c, http.StatusNotFound, CodeNotFound, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, CodeInternal, err.Error())
	}
}
