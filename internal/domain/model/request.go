package model

import "time"

// CustomRequest is a customer inquiry for a product not in the catalog.
type CustomRequest struct {
	ID        int64
	Name      string
	Email     string
	Product   string
	Category  string
	Details   string
	Image     string
	CreatedAt time.Time
}
