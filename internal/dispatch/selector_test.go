package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"io.resqforce.server/internal/geo"
	agencymodels "io.resqforce.server/internal/models/agency"
)

func TestNearestEmptySet(t *testing.T) {
	_, ok := Nearest(nil, geo.NewCoordinate(20.0, 78.0))
	assert.False(t, ok)
}

func TestNearestSingleCandidate(t *testing.T) {
	// A lone candidate wins no matter how far away it is.
	candidates := []agencymodels.Agency{
		{ID: "far", Coord: geo.NewCoordinate(-45.0, -170.0)},
	}

	selected, ok := Nearest(candidates, geo.NewCoordinate(28.71, 77.11))
	assert.True(t, ok)
	assert.Equal(t, "far", selected.ID)
}

func TestNearestAllUndefinedDistances(t *testing.T) {
	candidates := []agencymodels.Agency{
		{ID: "a1"},
		{ID: "a2"},
	}

	_, ok := Nearest(candidates, geo.NewCoordinate(28.71, 77.11))
	assert.False(t, ok)
}

func TestNearestSkipsUndefinedInFavorOfDefined(t *testing.T) {
	candidates := []agencymodels.Agency{
		{ID: "unknown"},
		{ID: "located", Coord: geo.NewCoordinate(10.0, 10.0)},
	}

	selected, ok := Nearest(candidates, geo.NewCoordinate(28.71, 77.11))
	assert.True(t, ok)
	assert.Equal(t, "located", selected.ID)
}

func TestNearestPicksClosest(t *testing.T) {
	candidates := []agencymodels.Agency{
		{ID: "far", Coord: geo.NewCoordinate(28.61, 77.20)},
		{ID: "near", Coord: geo.NewCoordinate(28.70, 77.10)},
	}

	selected, ok := Nearest(candidates, geo.NewCoordinate(28.71, 77.11))
	assert.True(t, ok)
	assert.Equal(t, "near", selected.ID)
}

func TestNearestEqualDistanceKeepsFirst(t *testing.T) {
	// X and Y sit on the same point, so their distances are identical;
	// the earlier candidate must stay selected.
	coord := geo.NewCoordinate(28.75, 77.15)
	candidates := []agencymodels.Agency{
		{ID: "X", Coord: coord},
		{ID: "Y", Coord: coord},
	}

	selected, ok := Nearest(candidates, geo.NewCoordinate(28.71, 77.11))
	assert.True(t, ok)
	assert.Equal(t, "X", selected.ID)
}

func TestFilterThenNearestExcludesCloserHeavyResponse(t *testing.T) {
	// The heavy-response unit is closer to the emergency but must never be
	// picked for first-line dispatch.
	roster := []agencymodels.Agency{
		{ID: "local", Role: agencymodels.RoleAgency, Coord: geo.NewCoordinate(28.70, 77.10)},
		{ID: "ndrf", Role: agencymodels.RoleHeavyResponse, Coord: geo.NewCoordinate(28.61, 77.20)},
	}
	target := geo.NewCoordinate(28.71, 77.11)

	selected, ok := Nearest(EligibleAgencies(roster), target)
	assert.True(t, ok)
	assert.Equal(t, "local", selected.ID)
}
