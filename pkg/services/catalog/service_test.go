package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateCategory(ctx context.Context, name string) (*store.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Category), args.Error(1)
}

func (m *mockStore) GetCategory(ctx context.Context, id int64) (*store.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Category), args.Error(1)
}

func (m *mockStore) ListCategories(ctx context.Context, offset, limit int) ([]store.Category, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]store.Category), args.Error(1)
}

func (m *mockStore) CreateProduct(ctx context.Context, product store.ProductRecord) (*store.ProductRecord, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ProductRecord), args.Error(1)
}

func (m *mockStore) GetProduct(ctx context.Context, id int64) (*store.ProductRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ProductRecord), args.Error(1)
}

func (m *mockStore) ListProducts(ctx context.Context, offset, limit int) ([]store.ProductRecord, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]store.ProductRecord), args.Error(1)
}

type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func TestRegisterProduct(t *testing.T) {
	tests := []struct {
		name      string
		product   domain.NewProduct
		setupMock func(*mockStore)
		expected  domain.Product
		expectErr error
	}{
		{
			name:    "creates product with category",
			product: domain.NewProduct{Name: " Widget ", Description: "blue", Price: 9.5, CategoryID: 1},
			setupMock: func(m *mockStore) {
				m.On("GetCategory", mock.Anything, int64(1)).
					Return(&store.Category{ID: 1, Name: "Books"}, nil)
				m.On("CreateProduct", mock.Anything, store.ProductRecord{
					Name: "Widget", Description: "blue", Price: 9.5, CategoryID: 1, CategoryName: "Books",
				}).Return(&store.ProductRecord{
					ID: 7, Name: "Widget", Description: "blue", Price: 9.5, CategoryID: 1, CategoryName: "Books",
				}, nil)
			},
			expected: domain.Product{
				ID: 7, Name: "Widget", Description: "blue", Price: 9.5,
				Category: domain.Category{ID: 1, Name: "Books"},
			},
		},
		{
			name:    "unknown category",
			product: domain.NewProduct{Name: "Widget", Price: 1, CategoryID: 42},
			setupMock: func(m *mockStore) {
				m.On("GetCategory", mock.Anything, int64(42)).Return(nil, nil)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name:      "empty name",
			product:   domain.NewProduct{Name: "  ", Price: 1, CategoryID: 1},
			setupMock: func(m *mockStore) {},
			expectErr: domain.ErrValidation,
		},
		{
			name:      "negative price",
			product:   domain.NewProduct{Name: "Widget", Price: -0.01, CategoryID: 1},
			setupMock: func(m *mockStore) {},
			expectErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(mockStore)
			tt.setupMock(st)
			svc := NewService(st, &inlineTx{})

			product, err := svc.RegisterProduct(context.Background(), tt.product)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, product)
			}
			st.AssertExpectations(t)
		})
	}
}

func TestRegisterCategory(t *testing.T) {
	st := new(mockStore)
	tx := &inlineTx{}
	st.On("CreateCategory", mock.Anything, "Books").Return(&store.Category{ID: 3, Name: "Books"}, nil)

	svc := NewService(st, tx)
	category, err := svc.RegisterCategory(context.Background(), "Books")
	require.NoError(t, err)
	assert.Equal(t, domain.Category{ID: 3, Name: "Books"}, category)
	assert.Equal(t, 1, tx.calls)

	_, err = svc.RegisterCategory(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	st.AssertExpectations(t)
}

func TestListProducts(t *testing.T) {
	st := new(mockStore)
	st.On("ListProducts", mock.Anything, 10, 5).Return([]store.ProductRecord{
		{ID: 11, Name: "A", Price: 1, CategoryID: 1, CategoryName: "Books"},
	}, nil)
	st.On("ListProducts", mock.Anything, 0, 10).Return([]store.ProductRecord(nil), errors.New("connection reset"))

	svc := NewService(st, &inlineTx{})

	products, err := svc.ListProducts(context.Background(), domain.Page{Offset: 10, Limit: 5})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Books", products[0].Category.Name)

	_, err = svc.ListProducts(context.Background(), domain.Page{Offset: 0, Limit: 10})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ListProducts(context.Background(), domain.Page{Offset: -1, Limit: 10})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetProduct_NotFound(t *testing.T) {
	st := new(mockStore)
	st.On("GetProduct", mock.Anything, int64(999)).Return(nil, nil)

	_, err := NewService(st, &inlineTx{}).GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
