package domain

import "time"

type Sale struct {
	ID       int64
	Date     time.Time
	Quantity int
	Revenue  float64
	Product  ProductRef
}

type ProductRef struct {
	ID   int64
	Name string
}

type NewSale struct {
	Date      time.Time
	Quantity  int
	Revenue   float64
	ProductID int64
}

// PeriodSales is the total quantity sold in an inclusive date range.
type PeriodSales struct {
	Period     DateRange
	TotalSales int64
}

type ProductSales struct {
	ProductID   int64
	ProductName string
	TotalSales  int64
}

type CategorySales struct {
	CategoryID   int64
	CategoryName string
	TotalSales   int64
}

type SalesAnalysis struct {
	TotalSales       int64
	AverageRevenue   *float64 // nil when there are no sales
	SalesPerProduct  []ProductSales
	SalesPerCategory []CategorySales
}
