package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"which-portal/core/types"
	"which-portal/internal/errors"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Point
	}{
		{name: "compact", input: "175.3/145.4", want: types.NewPoint(175.3, 145.4)},
		{name: "spaced", input: "175.3 / 145.4", want: types.NewPoint(175.3, 145.4)},
		{name: "leading zeros", input: "468.1/091.6", want: types.NewPoint(468.1, 91.6)},
		{name: "outer whitespace", input: "  000.0/999.9\t", want: types.NewPoint(0, 999.9)},
		{name: "uneven spacing", input: "011.2   /940.9", want: types.NewPoint(11.2, 940.9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinates(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoordinatesRejectsMalformed(t *testing.T) {
	inputs := []string{
		"17.3/145.4",
		"175.3/145",
		"175.3",
		"175.3/145.4/100.0",
		"175.35/145.4",
		"-75.3/145.4",
		"abc.d/efg.h",
		"",
		"175,3/145,4",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCoordinates(input)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeParsing))
			assert.Contains(t, err.Error(), input)
		})
	}
}

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{36.8, "036.8"},
		{921.1, "921.1"},
		{0, "000.0"},
		{5, "005.0"},
		{15.1, "015.1"},
		{999.9, "999.9"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCoordinate(tt.in))
	}
}

func TestFormatCoordinateOutOfDomainDoesNotPanic(t *testing.T) {
	for _, v := range []float64{-12.5, 1234.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.NotPanics(t, func() { _ = FormatCoordinate(v) })
	}
	assert.Equal(t, "1234.5", FormatCoordinate(1234.5))
}

func TestFormatPoint(t *testing.T) {
	assert.Equal(t, "011.2 / 940.9", FormatPoint(types.NewPoint(11.2, 940.9)))
}

// Every DDD.D value survives format -> parse unchanged.
func TestFormatParseRoundTrip(t *testing.T) {
	for tenths := 0; tenths <= 9999; tenths++ {
		v := float64(tenths) / 10

		s := FormatCoordinate(v)
		p, err := ParseCoordinates(s + "/" + s)
		require.NoError(t, err, s)
		require.Equal(t, v, p.X, s)
		require.Equal(t, v, p.Y, s)
	}

	p := types.NewPoint(468.1, 91.6)
	got, err := ParseCoordinates(FormatPoint(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
