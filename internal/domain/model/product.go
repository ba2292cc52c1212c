package model

import "time"

// Product is a catalog entry managed through the admin panel.
type Product struct {
	ID        int64
	Name      string
	Category  string
	Price     float64
	Stock     int64
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
