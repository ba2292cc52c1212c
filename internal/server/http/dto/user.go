package dto

import "time"

// UserResponse represents a store user without credential material.
type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Gender    string    `json:"gender"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserUpdateRequest carries partial profile updates. Absent fields keep
// their stored values.
type UserUpdateRequest struct {
	FullName *string `json:"fullName"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Gender   *string `json:"gender"`
}
