// Package coords parses and formats travel-plane coordinates.
//
// The textual form is two DDD.D numbers separated by a slash, with optional
// whitespace around each number: "175.3/145.4" or "175.3 / 145.4".
package coords

import (
	"fmt"
	"regexp"
	"strconv"

	"which-portal/core/types"
	"which-portal/internal/errors"
)

var pairPattern = regexp.MustCompile(`^\s*(\d{3}\.\d)\s*/\s*(\d{3}\.\d)\s*$`)

// ParseCoordinates parses a "DDD.D/DDD.D" string into a point
func ParseCoordinates(s string) (types.Point, error) {
	m := pairPattern.FindStringSubmatch(s)
	if m == nil {
		return types.Point{}, errors.Parsing(s, nil)
	}

	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return types.Point{}, errors.Parsing(s, err)
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return types.Point{}, errors.Parsing(s, err)
	}

	return types.NewPoint(x, y), nil
}

// FormatCoordinate renders a single coordinate with one decimal and a
// zero-padded three digit integer part, e.g. 36.8 -> "036.8".
// Negative values and values of 1000 or more are outside the input domain;
// they are formatted without padding guarantees.
func FormatCoordinate(v float64) string {
	return fmt.Sprintf("%05.1f", v)
}

// FormatPoint renders a point as "XXX.X / YYY.Y"
func FormatPoint(p types.Point) string {
	return FormatCoordinate(p.X) + " / " + FormatCoordinate(p.Y)
}
