package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/store/catalog"
	"github.com/de-tools/commerce-atlas/pkg/store/inventory"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/rs/zerolog"
)

const DefaultLowStockThreshold = 10

type Service interface {
	// GetStatus reports every product that has an inventory row. A product is
	// low on stock when its quantity is at or below lowStockThreshold.
	GetStatus(ctx context.Context, lowStockThreshold int) ([]domain.InventoryStatus, error)
	Update(ctx context.Context, update domain.InventoryUpdate) (domain.InventoryChange, error)
}

type inventoryService struct {
	inventory inventory.Store
	catalog   catalog.Store
	tx        session.Transactor
	now       func() time.Time
}

func NewService(
	inventoryStore inventory.Store,
	catalogStore catalog.Store,
	tx session.Transactor,
	now func() time.Time,
) Service {
	if now == nil {
		now = time.Now
	}
	return &inventoryService{
		inventory: inventoryStore,
		catalog:   catalogStore,
		tx:        tx,
		now:       now,
	}
}

func (s *inventoryService) GetStatus(ctx context.Context, lowStockThreshold int) ([]domain.InventoryStatus, error) {
	levels, err := s.inventory.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("get inventory status: %w", err)
	}

	statuses := make([]domain.InventoryStatus, 0, len(levels))
	for _, level := range levels {
		statuses = append(statuses, adapters.MapStoreInventoryLevelToDomain(level, lowStockThreshold))
	}
	return statuses, nil
}

// Update applies a signed delta. Quantities are not clamped and may go negative.
func (s *inventoryService) Update(ctx context.Context, update domain.InventoryUpdate) (domain.InventoryChange, error) {
	logger := zerolog.Ctx(ctx)

	if err := domain.CheckQuantity("quantity_change", int64(update.QuantityChange)); err != nil {
		return domain.InventoryChange{}, err
	}

	var change domain.InventoryChange
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		product, err := s.catalog.GetProduct(ctx, update.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("product", update.ProductID)
		}

		current, err := s.inventory.GetByProduct(ctx, product.ID)
		if err != nil {
			return err
		}
		next := int64(update.QuantityChange)
		if current != nil {
			next += int64(current.Quantity)
		}
		if err := domain.CheckQuantity("resulting quantity", next); err != nil {
			return err
		}

		quantity, err := s.inventory.ApplyDelta(ctx, product.ID, update.QuantityChange, domain.Day(s.now()))
		if err != nil {
			return err
		}

		change = domain.InventoryChange{
			ProductID:      product.ID,
			ProductName:    product.Name,
			QuantityChange: update.QuantityChange,
			NewQuantity:    quantity,
		}
		return nil
	})
	if err != nil {
		return domain.InventoryChange{}, fmt.Errorf("update inventory: %w", err)
	}

	logger.Info().
		Int64("product_id", change.ProductID).
		Int("quantity_change", change.QuantityChange).
		Int("new_quantity", change.NewQuantity).
		Msg("inventory updated")
	return change, nil
}
