package store

import "time"

type InventoryRecord struct {
	ID        int64
	Date      time.Time
	Quantity  int
	ProductID int64
}

// InventoryLevel is an inventory row joined with its product name.
type InventoryLevel struct {
	ProductID   int64
	ProductName string
	Quantity    int
}
