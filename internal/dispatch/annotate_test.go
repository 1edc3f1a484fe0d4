package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"io.resqforce.server/internal/geo"
	emergencymodels "io.resqforce.server/internal/models/emergency"
)

func TestAnnotateDistances(t *testing.T) {
	observer := geo.NewCoordinate(20.0, 78.0)
	emergencies := []emergencymodels.Emergency{
		{ID: "here", Coord: geo.NewCoordinate(20.0, 78.0), Severity: emergencymodels.SeverityHigh},
		{ID: "nowhere", Severity: emergencymodels.SeverityLow},
	}

	annotated := AnnotateDistances(observer, emergencies)

	assert.Len(t, annotated, 2)
	assert.Equal(t, "here", annotated[0].ID)
	if assert.NotNil(t, annotated[0].DistanceMeters) {
		assert.Equal(t, 0.0, *annotated[0].DistanceMeters)
	}
	assert.Equal(t, "nowhere", annotated[1].ID)
	assert.Nil(t, annotated[1].DistanceMeters)
}

func TestAnnotateDistancesRoundsToCentimeters(t *testing.T) {
	observer := geo.NewCoordinate(20.0, 78.0)
	emergencies := []emergencymodels.Emergency{
		{ID: "e1", Coord: geo.NewCoordinate(20.1, 78.1)},
	}

	annotated := AnnotateDistances(observer, emergencies)
	if assert.NotNil(t, annotated[0].DistanceMeters) {
		m := *annotated[0].DistanceMeters
		assert.Equal(t, math.Round(m*100)/100, m)
		assert.Greater(t, m, 0.0)
	}
}

func TestAnnotateDistancesUndefinedObserver(t *testing.T) {
	emergencies := []emergencymodels.Emergency{
		{ID: "e1", Coord: geo.NewCoordinate(20.0, 78.0)},
	}

	annotated := AnnotateDistances(geo.Coordinate{}, emergencies)
	assert.Nil(t, annotated[0].DistanceMeters)
}

func TestAnnotateDistancesEmptyInput(t *testing.T) {
	assert.Empty(t, AnnotateDistances(geo.NewCoordinate(1, 2), nil))
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "🔴 High", SeverityLabel(emergencymodels.SeverityHigh))
	assert.Equal(t, "🟡 Medium", SeverityLabel(emergencymodels.SeverityMedium))
	assert.Equal(t, "🟢 Low", SeverityLabel(emergencymodels.SeverityLow))
	assert.Equal(t, "🟢 Low", SeverityLabel(""))
	assert.Equal(t, "🟢 Low", SeverityLabel("catastrophic"))
}
