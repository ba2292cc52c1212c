package dto

import "time"

// ProductRequest carries catalog fields for create operations.
type ProductRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int64   `json:"stock"`
	Image    string  `json:"image"`
}

// ProductUpdateRequest carries partial catalog updates. Absent fields keep
// their stored values.
type ProductUpdateRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int64   `json:"stock"`
	Image    *string  `json:"image"`
}

// ProductResponse represents a catalog entry.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int64     `json:"stock"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
