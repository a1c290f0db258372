package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"which-portal/core/types"
	"which-portal/internal/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 15, c.Len())

	portals := c.Portals()
	assert.Equal(t, "Q521 / 514", portals[0].Name)
	assert.Equal(t, types.NewPoint(11.2, 940.9), portals[0].Destination)
	assert.Equal(t, "Q516 / 466", portals[14].Name)
	assert.Equal(t, types.NewPoint(567.3, 120.7), portals[14].Destination)
}

func TestDefaultCatalogValues(t *testing.T) {
	want := map[string]types.Point{
		"Q521 / 514": {X: 11.2, Y: 940.9},
		"Q544 / 533": {X: 36.8, Y: 633.0},
		"Q530 / 528": {X: 775.2, Y: 890.6},
		"Q520 / 540": {X: 584.7, Y: 621.1},
		"Q488 / 538": {X: 973.5, Y: 315.3},
		"Q466 / 514": {X: 230.2, Y: 398.8},
		"Q448 / 504": {X: 565.8, Y: 971.2},
		"Q476 / 496": {X: 611.7, Y: 413.1},
		"Q458 / 492": {X: 860.7, Y: 15.1},
		"Q492 / 492": {X: 5.0, Y: 164.7},
		"Q468 / 464": {X: 921.1, Y: 610.4},
		"Q476 / 458": {X: 409.1, Y: 774.8},
		"Q502 / 460": {X: 318.4, Y: 490.6},
		"Q506 / 474": {X: 191.0, Y: 92.6},
		"Q516 / 466": {X: 567.3, Y: 120.7},
	}

	for name, dest := range want {
		p, err := Default().Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, dest, p.Destination, name)
	}
}

func TestPortalsReturnsCopy(t *testing.T) {
	c := Default()
	portals := c.Portals()
	portals[0].Name = "mutated"

	assert.Equal(t, "Q521 / 514", c.Portals()[0].Name)
}

func TestLookupMissing(t *testing.T) {
	_, err := Default().Lookup("Q000 / 000")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		types.Portal{Name: "A", Destination: types.NewPoint(1, 1)},
		types.Portal{Name: "A", Destination: types.NewPoint(2, 2)},
	)
	require.Error(t, err)

	_, err = New(types.Portal{Destination: types.NewPoint(1, 1)})
	require.Error(t, err)
}

func TestNewEmpty(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Portals())
}

func TestWithAppends(t *testing.T) {
	extra := types.Portal{Name: "Q999 / 999", Destination: types.NewPoint(1, 2)}
	c, err := Default().With(extra)
	require.NoError(t, err)

	assert.Equal(t, 16, c.Len())
	assert.Equal(t, extra, c.Portals()[15])
	assert.Equal(t, 15, Default().Len())
}

func TestRangeStops(t *testing.T) {
	seen := 0
	Default().Range(func(i int, p types.Portal) bool {
		seen++
		return i < 2
	})
	assert.Equal(t, 3, seen)
}
