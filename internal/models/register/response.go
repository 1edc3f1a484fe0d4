package models

type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type RegisterResponse struct {
	Status string      `json:"status"`
	User   UserSummary `json:"user"`
}
