package models

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type LoginResponse struct {
	Status string `json:"status"`
	User   User   `json:"user"`
}

type SessionUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type CheckSessionResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *SessionUser `json:"user,omitempty"`
}
