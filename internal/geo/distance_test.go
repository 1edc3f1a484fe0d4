package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSamePointIsZero(t *testing.T) {
	p := NewCoordinate(28.70, 77.10)
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistanceSymmetric(t *testing.T) {
	a := NewCoordinate(28.70, 77.10)
	b := NewCoordinate(20.0, 78.0)
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistanceKnownValue(t *testing.T) {
	// Delhi city center to a point ~14 km away.
	a := NewCoordinate(28.70, 77.10)
	b := NewCoordinate(28.61, 77.20)

	d := Distance(a, b)
	assert.InDelta(t, 14.0, d, 1.0)
}

func TestDistanceAbsentCoordinateIsUndefined(t *testing.T) {
	lat := 28.70
	lng := 77.10
	defined := NewCoordinate(20.0, 78.0)

	cases := map[string]Coordinate{
		"both nil": {},
		"lat nil":  {Longitude: &lng},
		"lng nil":  {Latitude: &lat},
	}
	for name, c := range cases {
		assert.True(t, IsUndefined(Distance(c, defined)), name)
		assert.True(t, IsUndefined(Distance(defined, c)), name)
	}
}

func TestDistanceNeverPanics(t *testing.T) {
	// Antipodal points push the asin argument to the edge of its domain.
	a := NewCoordinate(0, 0)
	b := NewCoordinate(0, 180)

	d := Distance(a, b)
	assert.False(t, IsUndefined(d))
	assert.InDelta(t, 20015.0, d, 5.0)
}

func TestMeters(t *testing.T) {
	m := Meters(1.234567)
	if assert.NotNil(t, m) {
		assert.Equal(t, 1234.57, *m)
	}

	zero := Meters(0)
	if assert.NotNil(t, zero) {
		assert.Equal(t, 0.0, *zero)
	}

	assert.Nil(t, Meters(Undefined))
}

func TestDefined(t *testing.T) {
	lat := 1.0
	assert.True(t, NewCoordinate(1, 2).Defined())
	assert.False(t, Coordinate{}.Defined())
	assert.False(t, Coordinate{Latitude: &lat}.Defined())
}
