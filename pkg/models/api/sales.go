package api

type ProductRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Sale struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	Quantity  int        `json:"quantity"`
	Revenue   float64    `json:"revenue"`
	ProductID int64      `json:"product_id"`
	Product   ProductRef `json:"product"`
}

type SaleCreate struct {
	Date      string   `json:"date"`
	Quantity  *int     `json:"quantity"`
	Revenue   *float64 `json:"revenue"`
	ProductID *int64   `json:"product_id"`
}

type PeriodSales struct {
	Date       string `json:"date"`
	TotalSales int64  `json:"total_sales"`
}

type ProductSales struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	TotalSales  int64  `json:"total_sales"`
}

type CategorySales struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	TotalSales   int64  `json:"total_sales"`
}

type SalesAnalysis struct {
	TotalSales       int64           `json:"total_sales"`
	AverageRevenue   *float64        `json:"average_revenue"`
	SalesPerProduct  []ProductSales  `json:"sales_per_product"`
	SalesPerCategory []CategorySales `json:"sales_per_category"`
}
