// Package types - Route planning value types
package types

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a position in the 2D travel plane
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Orb converts the point for use with orb geometry helpers
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// DistanceTo returns the Euclidean distance between p and other
func (p Point) DistanceTo(other Point) float64 {
	return planar.Distance(p.Orb(), other.Orb())
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
