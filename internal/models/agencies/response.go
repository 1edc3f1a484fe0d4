package models

// AgencyItem is one roster entry in the authenticated agency listing.
type AgencyItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Expertise string   `json:"expertise"`
	Role      string   `json:"role"`
}
