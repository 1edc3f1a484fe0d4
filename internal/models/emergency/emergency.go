package models

import (
	"time"

	"io.resqforce.server/internal/geo"
)

// Severity levels accepted for a report. Anything else renders as low.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// StatusPending is the only active lifecycle state; the sole transition
// out of it is deletion.
const StatusPending = "pending"

// Emergency is a citizen-submitted incident report.
type Emergency struct {
	ID          string         `json:"id"`
	Coord       geo.Coordinate `json:"coord"`
	Description string         `json:"description"`
	Tag         string         `json:"tag"`
	Severity    string         `json:"severity"`
	Status      string         `json:"status"`
	ReportedBy  string         `json:"reportedBy"`
	CreatedAt   time.Time      `json:"createdAt"`
}
