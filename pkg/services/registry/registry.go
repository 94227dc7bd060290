package registry

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/services/catalog"
	"github.com/de-tools/commerce-atlas/pkg/services/inventory"
	"github.com/de-tools/commerce-atlas/pkg/services/revenue"
	"github.com/de-tools/commerce-atlas/pkg/services/sales"
	"github.com/de-tools/commerce-atlas/pkg/services/seed"
	catalogstore "github.com/de-tools/commerce-atlas/pkg/store/catalog"
	inventorystore "github.com/de-tools/commerce-atlas/pkg/store/inventory"
	revenuestore "github.com/de-tools/commerce-atlas/pkg/store/revenue"
	salesstore "github.com/de-tools/commerce-atlas/pkg/store/sales"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
)

// Services holds every domain service bound to one database.
type Services struct {
	Catalog   catalog.Service
	Inventory inventory.Service
	Sales     sales.Service
	Revenue   revenue.Reporter
	Seeder    *seed.Seeder
}

// NewServices builds the stores and services over db. now is the clock used for
// relative report windows and inventory dates; nil means time.Now.
func NewServices(db *sql.DB, dialect session.Dialect, now func() time.Time) (*Services, error) {
	catalogStore, err := catalogstore.NewStore(db, dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog store: %w", err)
	}
	inventoryStore, err := inventorystore.NewStore(db, dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory store: %w", err)
	}
	salesStore, err := salesstore.NewStore(db, dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to create sales store: %w", err)
	}
	revenueStore, err := revenuestore.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create revenue store: %w", err)
	}

	tx := session.NewTransactor(db)
	s := &Services{
		Catalog:   catalog.NewService(catalogStore, tx),
		Inventory: inventory.NewService(inventoryStore, catalogStore, tx, now),
		Sales:     sales.NewService(salesStore, catalogStore, tx),
		Revenue:   revenue.NewReporter(revenueStore, now),
	}
	s.Seeder = seed.NewSeeder(s.Catalog, s.Sales, s.Inventory, nil, now)
	return s, nil
}
