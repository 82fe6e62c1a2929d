package request

// SearchProductsQuery is bound from the query string of GET /api/products/search.
type SearchProductsQuery struct {
	Query    string `form:"q" binding:"required"`
	Sort     string `form:"sort"`
	Platform string `form:"platform"`
	// Platforms is an alias of Platform.
	Platforms string `form:"platforms"`
}

// PlatformFilter returns the comma-separated allow-list, preferring platform.
func (q SearchProductsQuery) PlatformFilter() string {
	if q.Platform != "" {
		return q.Platform
	}
	return q.Platforms
}
