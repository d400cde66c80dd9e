package domain

// CountByKey - счетчик по значению (статус, тип)
type CountByKey struct {
	Key   string
	Count int
}

// DashboardStats - агрегаты для админ-панели
type DashboardStats struct {
	TotalListings     int
	PublishedListings int
	FeaturedListings  int
	TotalViews        int64
	ByStatus          []CountByKey
	ByType            []CountByKey
	BlogPosts         int
}
