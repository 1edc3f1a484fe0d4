package models

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Expertise  string `json:"expertise"`
	RescuingID string `json:"rescuingId"`
}
