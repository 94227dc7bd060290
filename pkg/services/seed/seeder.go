package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/services/catalog"
	"github.com/de-tools/commerce-atlas/pkg/services/inventory"
	"github.com/de-tools/commerce-atlas/pkg/services/sales"
	"github.com/rs/zerolog"
)

// Options sizes a demo data set. Sales are spread over the two years before today.
type Options struct {
	Categories int
	Products   int
	Sales      int
}

func DefaultOptions() Options {
	return Options{
		Categories: 5,
		Products:   20,
		Sales:      100,
	}
}

type Summary struct {
	Categories int
	Products   int
	Sales      int
	Inventory  int
}

type Seeder struct {
	catalog   catalog.Service
	sales     sales.Service
	inventory inventory.Service
	fake      *gofakeit.Faker
	now       func() time.Time
}

func NewSeeder(
	catalogService catalog.Service,
	salesService sales.Service,
	inventoryService inventory.Service,
	fake *gofakeit.Faker,
	now func() time.Time,
) *Seeder {
	// A zero seed draws a random one.
	if fake == nil {
		fake = gofakeit.New(0)
	}
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		catalog:   catalogService,
		sales:     salesService,
		inventory: inventoryService,
		fake:      fake,
		now:       now,
	}
}

func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	logger := zerolog.Ctx(ctx)
	if opts.Categories < 0 || opts.Products < 0 || opts.Sales < 0 {
		return Summary{}, domain.Invalid("seed sizes must not be negative")
	}
	if opts.Products > 0 && opts.Categories == 0 {
		return Summary{}, domain.Invalid("products need at least one category")
	}
	if opts.Sales > 0 && opts.Products == 0 {
		return Summary{}, domain.Invalid("sales need at least one product")
	}

	var summary Summary
	categories := make([]domain.Category, 0, opts.Categories)
	for i := 0; i < opts.Categories; i++ {
		category, err := s.catalog.RegisterCategory(ctx, s.fake.Word())
		if err != nil {
			return summary, fmt.Errorf("seed categories: %w", err)
		}
		categories = append(categories, category)
		summary.Categories++
	}

	products := make([]domain.Product, 0, opts.Products)
	for i := 0; i < opts.Products; i++ {
		category := categories[s.fake.IntRange(0, len(categories)-1)]
		product, err := s.catalog.RegisterProduct(ctx, domain.NewProduct{
			Name:        s.fake.ProductName(),
			Description: s.fake.ProductDescription(),
			Price:       s.fake.Price(10, 200),
			CategoryID:  category.ID,
		})
		if err != nil {
			return summary, fmt.Errorf("seed products: %w", err)
		}
		products = append(products, product)
		summary.Products++
	}

	today := domain.Day(s.now())
	first := today.AddDate(-2, 0, 0)
	for i := 0; i < opts.Sales; i++ {
		product := products[s.fake.IntRange(0, len(products)-1)]
		_, err := s.sales.RecordSale(ctx, domain.NewSale{
			Date:      domain.Day(s.fake.DateRange(first, today)),
			Quantity:  s.fake.IntRange(1, 10),
			Revenue:   s.fake.Price(10, 200),
			ProductID: product.ID,
		})
		if err != nil {
			return summary, fmt.Errorf("seed sales: %w", err)
		}
		summary.Sales++
	}

	for _, product := range products {
		_, err := s.inventory.Update(ctx, domain.InventoryUpdate{
			ProductID:      product.ID,
			QuantityChange: s.fake.IntRange(1, 50),
		})
		if err != nil {
			return summary, fmt.Errorf("seed inventory: %w", err)
		}
		summary.Inventory++
	}

	logger.Info().
		Int("categories", summary.Categories).
		Int("products", summary.Products).
		Int("sales", summary.Sales).
		Int("inventory", summary.Inventory).
		Msg("demo data seeded")
	return summary, nil
}
