package dispatch

import (
	agencymodels "io.resqforce.server/internal/models/agency"
)

// EligibleAgencies returns the subset of the roster that may receive
// first-line dispatch for an emergency. Heavy-response units are excluded
// regardless of proximity; no severity or expertise filtering applies.
// An empty result is a normal outcome.
func EligibleAgencies(roster []agencymodels.Agency) []agencymodels.Agency {
	var candidates []agencymodels.Agency
	for _, a := range roster {
		if a.Role == agencymodels.RoleHeavyResponse {
			continue
		}
		candidates = append(candidates, a)
	}
	return candidates
}
