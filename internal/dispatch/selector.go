package dispatch

import (
	"io.resqforce.server/internal/geo"
	agencymodels "io.resqforce.server/internal/models/agency"
)

// Nearest returns the candidate with the minimum great-circle distance to
// target, or ok=false when the set is empty or no candidate has a
// comparable distance. The scan uses strict less-than against the running
// minimum, so equal distances keep the earlier candidate in input order.
func Nearest(candidates []agencymodels.Agency, target geo.Coordinate) (agencymodels.Agency, bool) {
	var nearest agencymodels.Agency
	found := false
	min := geo.Undefined

	for _, a := range candidates {
		d := geo.Distance(a.Coord, target)
		if d < min {
			min = d
			nearest = a
			found = true
		}
	}
	return nearest, found
}
