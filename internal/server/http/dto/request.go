package dto

import "time"

// CustomRequestPayload carries a custom product inquiry.
type CustomRequestPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Product  string `json:"product"`
	Category string `json:"category"`
	Details  string `json:"details"`
	Image    string `json:"image"`
}

// CustomRequestResponse represents a stored inquiry.
type CustomRequestResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Product   string    `json:"product"`
	Category  string    `json:"category"`
	Details   string    `json:"details"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
