package geo

// Coordinate is a geographic point in decimal degrees. Either component may
// be unknown; a Coordinate with any missing component is treated as absent
// for distance purposes.
type Coordinate struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NewCoordinate builds a fully defined Coordinate.
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: &lat, Longitude: &lng}
}

// Defined reports whether both components are present.
func (c Coordinate) Defined() bool {
	return c.Latitude != nil && c.Longitude != nil
}
