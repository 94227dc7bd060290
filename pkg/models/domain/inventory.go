package domain

import "math"

// Stock and sale quantities are stored in 32-bit integer columns.
const (
	MinQuantity = math.MinInt32
	MaxQuantity = math.MaxInt32
)

// CheckQuantity rejects a quantity the store cannot hold.
func CheckQuantity(field string, q int64) error {
	if q < MinQuantity || q > MaxQuantity {
		return Invalid("%s %d is outside [%d, %d]", field, q, MinQuantity, MaxQuantity)
	}
	return nil
}

type InventoryStatus struct {
	ProductID       int64
	ProductName     string
	CurrentQuantity int
	LowStock        bool
}

type InventoryUpdate struct {
	ProductID      int64
	QuantityChange int
}

type InventoryChange struct {
	ProductID      int64
	ProductName    string
	QuantityChange int
	NewQuantity    int
}
