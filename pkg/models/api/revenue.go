package api

type RevenueTimePeriod struct {
	TimePeriod   string  `json:"time_period"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RevenueDaily struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RevenueWeekly struct {
	Week         string  `json:"week"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RevenueMonthly struct {
	Month        string  `json:"month"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RevenueAnnual struct {
	Year         string  `json:"year"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RevenueProduct struct {
	ProductID    int64   `json:"product_id"`
	Product      string  `json:"product"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RevenueCategory struct {
	CategoryID   int64   `json:"category_id"`
	Category     string  `json:"category"`
	TotalRevenue float64 `json:"total_revenue"`
}
