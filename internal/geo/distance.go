package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Undefined is the sentinel distance for points that cannot be compared.
// It compares greater than every real distance, so an Undefined result can
// never win a nearest-match scan.
var Undefined = math.Inf(1)

// IsUndefined reports whether d is the Undefined sentinel or otherwise not
// a usable distance.
func IsUndefined(d float64) bool {
	return math.IsInf(d, 1) || math.IsNaN(d)
}

// Distance returns the great-circle distance in kilometers between a and b
// using the haversine formula. If either coordinate is absent, or the
// computation drifts outside the asin domain, the result is Undefined
// rather than an error.
func Distance(a, b Coordinate) float64 {
	if !a.Defined() || !b.Defined() {
		return Undefined
	}

	lat1 := radians(*a.Latitude)
	lng1 := radians(*a.Longitude)
	lat2 := radians(*b.Latitude)
	lng2 := radians(*b.Longitude)

	dlat := lat2 - lat1
	dlng := lng2 - lng1

	h := sinSq(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*sinSq(dlng/2)
	root := math.Sqrt(h)
	if root > 1 {
		// Floating-point drift can push the argument just past the
		// asin domain; clamp instead of returning NaN.
		root = 1
	}

	d := 2 * earthRadiusKm * math.Asin(root)
	if math.IsNaN(d) {
		return Undefined
	}
	return d
}

// Meters converts a distance in kilometers to meters rounded to two decimal
// places. Undefined distances map to nil.
func Meters(km float64) *float64 {
	if IsUndefined(km) {
		return nil
	}
	m := math.Round(km*1000*100) / 100
	return &m
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func sinSq(x float64) float64 {
	s := math.Sin(x)
	return s * s
}
