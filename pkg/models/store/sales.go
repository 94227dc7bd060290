package store

import (
	"database/sql"
	"time"
)

// SaleRecord is a sale row joined with its product name.
type SaleRecord struct {
	ID          int64
	Date        time.Time
	Quantity    int
	Revenue     float64
	ProductID   int64
	ProductName string
}

// GroupTotal is an aggregate keyed by a product or category.
type GroupTotal struct {
	ID    int64
	Name  string
	Total sql.NullInt64
}

type SalesTotals struct {
	TotalQuantity  sql.NullInt64
	AverageRevenue sql.NullFloat64
}
