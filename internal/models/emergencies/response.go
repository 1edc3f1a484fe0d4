package models

import "time"

// EmergencyItem is one pending emergency in the public listing.
type EmergencyItem struct {
	ID              string    `json:"id"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Description     string    `json:"description"`
	Tag             string    `json:"tag"`
	Severity        string    `json:"severity"`
	SeverityDisplay string    `json:"severity_display"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// EmergencyDetailItem adds the observer distance for the authenticated
// view. Distance is null when it cannot be computed.
type EmergencyDetailItem struct {
	EmergencyItem
	Distance *float64 `json:"distance"`
}
