package sales

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSalesStore struct {
	mock.Mock
}

func (m *mockSalesStore) CreateSale(ctx context.Context, sale store.SaleRecord) (*store.SaleRecord, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SaleRecord), args.Error(1)
}

func (m *mockSalesStore) ListSales(ctx context.Context, offset, limit int) ([]store.SaleRecord, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]store.SaleRecord), args.Error(1)
}

func (m *mockSalesStore) SumQuantity(ctx context.Context, start, end time.Time) (sql.NullInt64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(sql.NullInt64), args.Error(1)
}

func (m *mockSalesStore) ProductQuantity(ctx context.Context, productID int64) (*store.GroupTotal, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.GroupTotal), args.Error(1)
}

func (m *mockSalesStore) CategoryQuantity(ctx context.Context, categoryID int64) (*store.GroupTotal, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.GroupTotal), args.Error(1)
}

func (m *mockSalesStore) Totals(ctx context.Context) (*store.SalesTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(*store.SalesTotals), args.Error(1)
}

func (m *mockSalesStore) QuantityPerProduct(ctx context.Context) ([]store.GroupTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.GroupTotal), args.Error(1)
}

func (m *mockSalesStore) QuantityPerCategory(ctx context.Context) ([]store.GroupTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.GroupTotal), args.Error(1)
}

type mockCatalogStore struct {
	mock.Mock
}

func (m *mockCatalogStore) CreateCategory(context.Context, string) (*store.Category, error) {
	panic("unexpected call")
}

func (m *mockCatalogStore) GetCategory(ctx context.Context, id int64) (*store.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Category), args.Error(1)
}

func (m *mockCatalogStore) ListCategories(context.Context, int, int) ([]store.Category, error) {
	panic("unexpected call")
}

func (m *mockCatalogStore) CreateProduct(context.Context, store.ProductRecord) (*store.ProductRecord, error) {
	panic("unexpected call")
}

func (m *mockCatalogStore) GetProduct(ctx context.Context, id int64) (*store.ProductRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ProductRecord), args.Error(1)
}

func (m *mockCatalogStore) ListProducts(context.Context, int, int) ([]store.ProductRecord, error) {
	panic("unexpected call")
}

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestSalesByDate_EmptyRangeIsZero(t *testing.T) {
	st := new(mockSalesStore)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	st.On("SumQuantity", mock.Anything, start, end).Return(sql.NullInt64{}, nil)

	period, err := domain.NewDateRange(start, end)
	require.NoError(t, err)

	result, err := NewService(st, new(mockCatalogStore), inlineTx{}).SalesByDate(context.Background(), period)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalSales)
	assert.Equal(t, "2024-01-01 - 2024-01-31", result.Period.Label())
}

func TestSalesByProduct(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mockSalesStore, *mockCatalogStore)
		expected  domain.ProductSales
		expectErr error
	}{
		{
			name: "product with sales",
			setupMock: func(s *mockSalesStore, c *mockCatalogStore) {
				c.On("GetProduct", mock.Anything, int64(1)).Return(&store.ProductRecord{ID: 1, Name: "Widget"}, nil)
				s.On("ProductQuantity", mock.Anything, int64(1)).
					Return(&store.GroupTotal{ID: 1, Name: "Widget", Total: sql.NullInt64{Int64: 8, Valid: true}}, nil)
			},
			expected: domain.ProductSales{ProductID: 1, ProductName: "Widget", TotalSales: 8},
		},
		{
			name: "product without sales",
			setupMock: func(s *mockSalesStore, c *mockCatalogStore) {
				c.On("GetProduct", mock.Anything, int64(1)).Return(&store.ProductRecord{ID: 1, Name: "Widget"}, nil)
				s.On("ProductQuantity", mock.Anything, int64(1)).Return(nil, nil)
			},
			expected: domain.ProductSales{ProductID: 1, ProductName: "Widget"},
		},
		{
			name: "unknown product",
			setupMock: func(s *mockSalesStore, c *mockCatalogStore) {
				c.On("GetProduct", mock.Anything, int64(1)).Return(nil, nil)
			},
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(mockSalesStore)
			cat := new(mockCatalogStore)
			tt.setupMock(st, cat)

			result, err := NewService(st, cat, inlineTx{}).SalesByProduct(context.Background(), 1)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			st.AssertExpectations(t)
		})
	}
}

func TestSalesByCategory_WithoutSales(t *testing.T) {
	st := new(mockSalesStore)
	cat := new(mockCatalogStore)
	cat.On("GetCategory", mock.Anything, int64(2)).Return(&store.Category{ID: 2, Name: "Toys"}, nil)
	st.On("CategoryQuantity", mock.Anything, int64(2)).Return(nil, nil)

	result, err := NewService(st, cat, inlineTx{}).SalesByCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySales{CategoryID: 2, CategoryName: "Toys"}, result)
}

func TestRecordSale(t *testing.T) {
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("valid sale", func(t *testing.T) {
		st := new(mockSalesStore)
		cat := new(mockCatalogStore)
		cat.On("GetProduct", mock.Anything, int64(3)).Return(&store.ProductRecord{ID: 3, Name: "Novel"}, nil)
		st.On("CreateSale", mock.Anything, store.SaleRecord{
			Date: date, Quantity: 2, Revenue: 15.5, ProductID: 3, ProductName: "Novel",
		}).Return(&store.SaleRecord{
			ID: 10, Date: date, Quantity: 2, Revenue: 15.5, ProductID: 3, ProductName: "Novel",
		}, nil)

		sale, err := NewService(st, cat, inlineTx{}).RecordSale(context.Background(), domain.NewSale{
			Date: date, Quantity: 2, Revenue: 15.5, ProductID: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(10), sale.ID)
		assert.Equal(t, domain.ProductRef{ID: 3, Name: "Novel"}, sale.Product)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := NewService(new(mockSalesStore), new(mockCatalogStore), inlineTx{})
		for _, sale := range []domain.NewSale{
			{Date: date, Quantity: 0, Revenue: 1, ProductID: 3},
			{Date: date, Quantity: 1, Revenue: -1, ProductID: 3},
			{Quantity: 1, Revenue: 1, ProductID: 3},
			{Date: date, Quantity: domain.MaxQuantity + 1, Revenue: 1, ProductID: 3},
		} {
			_, err := svc.RecordSale(context.Background(), sale)
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		cat := new(mockCatalogStore)
		cat.On("GetProduct", mock.Anything, int64(404)).Return(nil, nil)

		_, err := NewService(new(mockSalesStore), cat, inlineTx{}).RecordSale(context.Background(), domain.NewSale{
			Date: date, Quantity: 1, Revenue: 1, ProductID: 404,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("no sales", func(t *testing.T) {
		st := new(mockSalesStore)
		st.On("Totals", mock.Anything).Return(&store.SalesTotals{}, nil)
		st.On("QuantityPerProduct", mock.Anything).Return([]store.GroupTotal{}, nil)
		st.On("QuantityPerCategory", mock.Anything).Return([]store.GroupTotal{}, nil)

		analysis, err := NewService(st, new(mockCatalogStore), inlineTx{}).Analyze(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), analysis.TotalSales)
		assert.Nil(t, analysis.AverageRevenue)
		assert.Empty(t, analysis.SalesPerProduct)
		assert.Empty(t, analysis.SalesPerCategory)
	})

	t.Run("with sales", func(t *testing.T) {
		st := new(mockSalesStore)
		st.On("Totals", mock.Anything).Return(&store.SalesTotals{
			TotalQuantity:  sql.NullInt64{Int64: 8, Valid: true},
			AverageRevenue: sql.NullFloat64{Float64: 25, Valid: true},
		}, nil)
		st.On("QuantityPerProduct", mock.Anything).Return([]store.GroupTotal{
			{ID: 1, Name: "Widget", Total: sql.NullInt64{Int64: 8, Valid: true}},
		}, nil)
		st.On("QuantityPerCategory", mock.Anything).Return([]store.GroupTotal{
			{ID: 2, Name: "Toys", Total: sql.NullInt64{Int64: 8, Valid: true}},
		}, nil)

		analysis, err := NewService(st, new(mockCatalogStore), inlineTx{}).Analyze(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(8), analysis.TotalSales)
		require.NotNil(t, analysis.AverageRevenue)
		assert.Equal(t, 25.0, *analysis.AverageRevenue)
		assert.Equal(t, []domain.CategorySales{{CategoryID: 2, CategoryName: "Toys", TotalSales: 8}}, analysis.SalesPerCategory)
	})
}
