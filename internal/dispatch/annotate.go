package dispatch

import (
	"io.resqforce.server/internal/geo"
	emergencymodels "io.resqforce.server/internal/models/emergency"
)

// severityLabels is the display mapping used by the dashboards. Unknown or
// missing severities render as low.
var severityLabels = map[string]string{
	emergencymodels.SeverityHigh:   "🔴 High",
	emergencymodels.SeverityMedium: "🟡 Medium",
	emergencymodels.SeverityLow:    "🟢 Low",
}

// SeverityLabel returns the display label for a severity level.
func SeverityLabel(severity string) string {
	if label, ok := severityLabels[severity]; ok {
		return label
	}
	return severityLabels[emergencymodels.SeverityLow]
}

// AnnotatedEmergency pairs an emergency with its distance from an observer
// and its display label.
type AnnotatedEmergency struct {
	emergencymodels.Emergency

	// DistanceMeters is the distance from the observer in meters, rounded
	// to two decimal places, or nil when it cannot be computed.
	DistanceMeters  *float64
	SeverityDisplay string
}

// AnnotateDistances maps each emergency to its distance from the observer.
// Input order is preserved and nothing is filtered; emergencies whose
// distance cannot be computed get a nil distance.
func AnnotateDistances(observer geo.Coordinate, emergencies []emergencymodels.Emergency) []AnnotatedEmergency {
	annotated := make([]AnnotatedEmergency, 0, len(emergencies))
	for _, e := range emergencies {
		annotated = append(annotated, AnnotatedEmergency{
			Emergency:       e,
			DistanceMeters:  geo.Meters(geo.Distance(observer, e.Coord)),
			SeverityDisplay: SeverityLabel(e.Severity),
		})
	}
	return annotated
}
