package dto

// MessageResponse wraps informational responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse wraps failed responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DashboardResponse aggregates admin dashboard totals.
type DashboardResponse struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalOrders   int64 `json:"totalOrders"`
	TotalUsers    int64 `json:"totalUsers"`
}

// MediaAssetResponse represents a hosted image.
type MediaAssetResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
