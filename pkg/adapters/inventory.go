package adapters

import (
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/models/store"
)

func MapStoreInventoryLevelToDomain(level store.InventoryLevel, lowStockThreshold int) domain.InventoryStatus {
	return domain.InventoryStatus{
		ProductID:       level.ProductID,
		ProductName:     level.ProductName,
		CurrentQuantity: level.Quantity,
		LowStock:        level.Quantity <= lowStockThreshold,
	}
}

func MapInventoryStatusDomainToApi(s domain.InventoryStatus) api.InventoryStatus {
	return api.InventoryStatus{
		ProductID:       s.ProductID,
		ProductName:     s.ProductName,
		CurrentQuantity: s.CurrentQuantity,
		LowStock:        s.LowStock,
	}
}

func MapInventoryChangeDomainToApi(c domain.InventoryChange) api.InventoryChange {
	return api.InventoryChange{
		ProductID:      c.ProductID,
		ProductName:    c.ProductName,
		QuantityChange: c.QuantityChange,
		NewQuantity:    c.NewQuantity,
	}
}
