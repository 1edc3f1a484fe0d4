package models

import (
	"time"

	"io.resqforce.server/internal/geo"
)

const (
	// RoleAgency is the default role assigned at registration.
	RoleAgency = "agency"
	// RoleHeavyResponse marks national heavy-response units. They are
	// reserved for escalation and excluded from first-line dispatch.
	RoleHeavyResponse = "ndrf"
)

// Fallback coordinates assigned at registration until the agency updates
// its own location.
const (
	FallbackLatitude  = 20.5937
	FallbackLongitude = 78.9629
)

// Agency is a registered rescue organization.
type Agency struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Expertise   string         `json:"expertise"`
	Role        string         `json:"role"`
	Coord       geo.Coordinate `json:"coord"`
	Verified    bool           `json:"verified"`
	AgencyType  string         `json:"agencyType"`
	LastUpdated *time.Time     `json:"lastUpdated,omitempty"`
}
