package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"io.resqforce.server/internal/geo"
	agencymodels "io.resqforce.server/internal/models/agency"
)

func TestEligibleAgenciesExcludesHeavyResponse(t *testing.T) {
	roster := []agencymodels.Agency{
		{ID: "a1", Role: agencymodels.RoleAgency},
		{ID: "n1", Role: agencymodels.RoleHeavyResponse},
		{ID: "a2", Role: "volunteer"},
	}

	candidates := EligibleAgencies(roster)

	assert.Len(t, candidates, 2)
	for _, a := range candidates {
		assert.NotEqual(t, agencymodels.RoleHeavyResponse, a.Role)
	}
	assert.Equal(t, "a1", candidates[0].ID)
	assert.Equal(t, "a2", candidates[1].ID)
}

func TestEligibleAgenciesEmptyRoster(t *testing.T) {
	assert.Empty(t, EligibleAgencies(nil))
}

func TestEligibleAgenciesAllHeavyResponse(t *testing.T) {
	roster := []agencymodels.Agency{
		{ID: "n1", Role: agencymodels.RoleHeavyResponse, Coord: geo.NewCoordinate(28.61, 77.20)},
		{ID: "n2", Role: agencymodels.RoleHeavyResponse},
	}
	assert.Empty(t, EligibleAgencies(roster))
}
