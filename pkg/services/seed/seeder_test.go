package seed

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	mock.Mock
	nextID int64
}

func (m *mockCatalog) RegisterCategory(ctx context.Context, name string) (domain.Category, error) {
	m.Called(ctx, name)
	m.nextID++
	return domain.Category{ID: m.nextID, Name: name}, nil
}

func (m *mockCatalog) GetCategory(context.Context, int64) (domain.Category, error) {
	panic("unexpected call")
}

func (m *mockCatalog) ListCategories(context.Context, domain.Page) ([]domain.Category, error) {
	panic("unexpected call")
}

func (m *mockCatalog) RegisterProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error) {
	m.Called(ctx, product)
	m.nextID++
	return domain.Product{ID: m.nextID, Name: product.Name, Price: product.Price,
		Category: domain.Category{ID: product.CategoryID}}, nil
}

func (m *mockCatalog) GetProduct(context.Context, int64) (domain.Product, error) {
	panic("unexpected call")
}

func (m *mockCatalog) ListProducts(context.Context, domain.Page) ([]domain.Product, error) {
	panic("unexpected call")
}

type mockSales struct {
	mock.Mock
	recorded []domain.NewSale
}

func (m *mockSales) ListSales(context.Context, domain.Page) ([]domain.Sale, error) {
	panic("unexpected call")
}

func (m *mockSales) RecordSale(_ context.Context, sale domain.NewSale) (domain.Sale, error) {
	m.recorded = append(m.recorded, sale)
	return domain.Sale{Date: sale.Date, Quantity: sale.Quantity, Revenue: sale.Revenue}, nil
}

func (m *mockSales) SalesByDate(context.Context, domain.DateRange) (domain.PeriodSales, error) {
	panic("unexpected call")
}

func (m *mockSales) SalesByProduct(context.Context, int64) (domain.ProductSales, error) {
	panic("unexpected call")
}

func (m *mockSales) SalesByCategory(context.Context, int64) (domain.CategorySales, error) {
	panic("unexpected call")
}

func (m *mockSales) Analyze(context.Context) (domain.SalesAnalysis, error) {
	panic("unexpected call")
}

type mockInventory struct {
	updates []domain.InventoryUpdate
}

func (m *mockInventory) GetStatus(context.Context, int) ([]domain.InventoryStatus, error) {
	panic("unexpected call")
}

func (m *mockInventory) Update(_ context.Context, update domain.InventoryUpdate) (domain.InventoryChange, error) {
	m.updates = append(m.updates, update)
	return domain.InventoryChange{ProductID: update.ProductID, NewQuantity: update.QuantityChange}, nil
}

func TestRun(t *testing.T) {
	today := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cat := &mockCatalog{}
	cat.On("RegisterCategory", mock.Anything, mock.Anything)
	cat.On("RegisterProduct", mock.Anything, mock.Anything)
	sal := &mockSales{}
	inv := &mockInventory{}

	seeder := NewSeeder(cat, sal, inv, gofakeit.New(42), func() time.Time { return today })
	summary, err := seeder.Run(context.Background(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, Summary{Categories: 5, Products: 20, Sales: 100, Inventory: 20}, summary)
	cat.AssertNumberOfCalls(t, "RegisterCategory", 5)
	cat.AssertNumberOfCalls(t, "RegisterProduct", 20)

	first := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, sale := range sal.recorded {
		assert.False(t, sale.Date.Before(first), sale.Date)
		assert.False(t, sale.Date.After(last), sale.Date)
		assert.GreaterOrEqual(t, sale.Quantity, 1)
		assert.LessOrEqual(t, sale.Quantity, 10)
		assert.GreaterOrEqual(t, sale.Revenue, 10.0)
		assert.LessOrEqual(t, sale.Revenue, 200.0)
		assert.InDelta(t, math.Round(sale.Revenue*100), sale.Revenue*100, 1e-6)
		assert.Greater(t, sale.ProductID, int64(5))
	}
	for _, update := range inv.updates {
		assert.GreaterOrEqual(t, update.QuantityChange, 1)
		assert.LessOrEqual(t, update.QuantityChange, 50)
	}
}

func TestRun_RejectsImpossibleSizes(t *testing.T) {
	seeder := NewSeeder(&mockCatalog{}, &mockSales{}, &mockInventory{}, gofakeit.New(1), nil)

	for _, opts := range []Options{
		{Categories: -1},
		{Categories: 0, Products: 3},
		{Categories: 1, Products: 0, Sales: 3},
	} {
		_, err := seeder.Run(context.Background(), opts)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestRun_SameSeedSameData(t *testing.T) {
	today := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	run := func() []domain.NewSale {
		cat := &mockCatalog{}
		cat.On("RegisterCategory", mock.Anything, mock.Anything)
		cat.On("RegisterProduct", mock.Anything, mock.Anything)
		sal := &mockSales{}

		_, err := NewSeeder(cat, sal, &mockInventory{}, gofakeit.New(7), func() time.Time { return today }).
			Run(context.Background(), Options{Categories: 2, Products: 4, Sales: 10})
		require.NoError(t, err)
		return sal.recorded
	}

	first := run()
	require.Len(t, first, 10)
	assert.Equal(t, first, run())
}
