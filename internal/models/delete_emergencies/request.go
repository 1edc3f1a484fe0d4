package models

type DeleteEmergenciesRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
