package models

type ReportEmergencyRequest struct {
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Description string   `json:"description"`
	Tag         string   `json:"tag"`
	Severity    string   `json:"severity"`
}
