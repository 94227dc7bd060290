package api

type InventoryStatus struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	CurrentQuantity int    `json:"current_quantity"`
	LowStock        bool   `json:"low_stock"`
}

type InventoryUpdate struct {
	ProductID      *int64 `json:"product_id"`
	QuantityChange *int   `json:"quantity_change"`
}

type InventoryChange struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	QuantityChange int    `json:"quantity_change"`
	NewQuantity    int    `json:"new_quantity"`
}
