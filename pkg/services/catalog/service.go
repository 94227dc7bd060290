package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/store/catalog"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/rs/zerolog"
)

type Service interface {
	RegisterCategory(ctx context.Context, name string) (domain.Category, error)
	GetCategory(ctx context.Context, id int64) (domain.Category, error)
	ListCategories(ctx context.Context, page domain.Page) ([]domain.Category, error)
	RegisterProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	ListProducts(ctx context.Context, page domain.Page) ([]domain.Product, error)
}

type catalogService struct {
	store catalog.Store
	tx    session.Transactor
}

func NewService(store catalog.Store, tx session.Transactor) Service {
	return &catalogService{
		store: store,
		tx:    tx,
	}
}

func (s *catalogService) RegisterCategory(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.Invalid("category name is required")
	}

	var created domain.Category
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.CreateCategory(ctx, name)
		if err != nil {
			return err
		}
		created = adapters.MapStoreCategoryToDomain(*record)
		return nil
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("register category: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("category_id", created.ID).
		Str("name", created.Name).
		Msg("category registered")
	return created, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id int64) (domain.Category, error) {
	record, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category: %w", err)
	}
	if record == nil {
		return domain.Category{}, domain.NotFound("category", id)
	}
	return adapters.MapStoreCategoryToDomain(*record), nil
}

func (s *catalogService) ListCategories(ctx context.Context, page domain.Page) ([]domain.Category, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	records, err := s.store.ListCategories(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, adapters.MapStoreCategoryToDomain(r))
	}
	return categories, nil
}

func (s *catalogService) RegisterProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return domain.Product{}, domain.Invalid("product name is required")
	}
	if product.Price < 0 {
		return domain.Product{}, domain.Invalid("price must not be negative, got %v", product.Price)
	}

	var created domain.Product
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		category, err := s.store.GetCategory(ctx, product.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound("category", product.CategoryID)
		}

		record, err := s.store.CreateProduct(ctx,
			adapters.MapNewProductToStore(product, adapters.MapStoreCategoryToDomain(*category)))
		if err != nil {
			return err
		}
		created = adapters.MapStoreProductToDomain(*record)
		return nil
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("register product: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("product_id", created.ID).
		Int64("category_id", created.Category.ID).
		Msg("product registered")
	return created, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	record, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	if record == nil {
		return domain.Product{}, domain.NotFound("product", id)
	}
	return adapters.MapStoreProductToDomain(*record), nil
}

func (s *catalogService) ListProducts(ctx context.Context, page domain.Page) ([]domain.Product, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	records, err := s.store.ListProducts(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, adapters.MapStoreProductToDomain(r))
	}
	return products, nil
}
