package dto

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Gender          string `json:"gender"`
}

// LoginRequest describes login credentials payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
