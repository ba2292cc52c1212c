package model

// MediaAsset is an image hosted on the external media service.
type MediaAsset struct {
	URL      string
	PublicID string
}

// DashboardCounts aggregates record totals shown on the admin dashboard.
type DashboardCounts struct {
	TotalProducts int64
	TotalOrders   int64
	TotalUsers    int64
}
