// Package output provides output formatting interfaces.
// This package produces human and machine-readable itineraries.
package output

import (
	"io"
	"sort"

	"which-portal/core/types"
	"which-portal/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the plain itinerary text
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *PlanResult) error
}

// PlanResult is everything a formatter may show about one plan
type PlanResult struct {
	// PlanID identifies the run in logs and JSON output
	PlanID string

	// Itinerary is the chosen route
	Itinerary types.Itinerary

	// Candidates are all evaluated routes, direct first. Optional.
	Candidates []types.Candidate

	// Chosen indexes the winning entry of Candidates
	Chosen int
}

// Options tune formatter behavior
type Options struct {
	// Explain appends the candidate breakdown
	Explain bool

	// NoColor disables ANSI colors
	NoColor bool
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&TextFormatter{Explain: opts.Explain, NoColor: opts.NoColor})
	r.Register(&JSONFormatter{Explain: opts.Explain})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	f, ok := r.formatters[Format(name)]
	if !ok {
		return nil, errors.NotFound("output format", name)
	}
	return f, nil
}

// Formats lists registered format names, sorted
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}
