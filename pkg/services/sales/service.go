package sales

import (
	"context"
	"fmt"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/store/catalog"
	"github.com/de-tools/commerce-atlas/pkg/store/sales"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/rs/zerolog"
)

type Service interface {
	ListSales(ctx context.Context, page domain.Page) ([]domain.Sale, error)
	RecordSale(ctx context.Context, sale domain.NewSale) (domain.Sale, error)
	// SalesByDate sums quantity over an inclusive range; zero when nothing sold.
	SalesByDate(ctx context.Context, period domain.DateRange) (domain.PeriodSales, error)
	// SalesByProduct fails with ErrNotFound for an unknown product and
	// reports zero for a known product without sales.
	SalesByProduct(ctx context.Context, productID int64) (domain.ProductSales, error)
	SalesByCategory(ctx context.Context, categoryID int64) (domain.CategorySales, error)
	Analyze(ctx context.Context) (domain.SalesAnalysis, error)
}

type salesService struct {
	sales   sales.Store
	catalog catalog.Store
	tx      session.Transactor
}

func NewService(salesStore sales.Store, catalogStore catalog.Store, tx session.Transactor) Service {
	return &salesService{
		sales:   salesStore,
		catalog: catalogStore,
		tx:      tx,
	}
}

func (s *salesService) ListSales(ctx context.Context, page domain.Page) ([]domain.Sale, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	records, err := s.sales.ListSales(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	result := make([]domain.Sale, 0, len(records))
	for _, r := range records {
		result = append(result, adapters.MapStoreSaleToDomain(r))
	}
	return result, nil
}

func (s *salesService) RecordSale(ctx context.Context, sale domain.NewSale) (domain.Sale, error) {
	if sale.Quantity <= 0 {
		return domain.Sale{}, domain.Invalid("quantity must be positive, got %d", sale.Quantity)
	}
	if err := domain.CheckQuantity("quantity", int64(sale.Quantity)); err != nil {
		return domain.Sale{}, err
	}
	if sale.Revenue < 0 {
		return domain.Sale{}, domain.Invalid("revenue must not be negative, got %v", sale.Revenue)
	}
	if sale.Date.IsZero() {
		return domain.Sale{}, domain.Invalid("sale date is required")
	}

	var created domain.Sale
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		product, err := s.catalog.GetProduct(ctx, sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("product", sale.ProductID)
		}

		record, err := s.sales.CreateSale(ctx, adapters.MapNewSaleToStore(sale, adapters.MapStoreProductToDomain(*product)))
		if err != nil {
			return err
		}
		created = adapters.MapStoreSaleToDomain(*record)
		return nil
	})
	if err != nil {
		return domain.Sale{}, fmt.Errorf("record sale: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("sale_id", created.ID).
		Int64("product_id", created.Product.ID).
		Int("quantity", created.Quantity).
		Msg("sale recorded")
	return created, nil
}

func (s *salesService) SalesByDate(ctx context.Context, period domain.DateRange) (domain.PeriodSales, error) {
	total, err := s.sales.SumQuantity(ctx, period.Start, period.End)
	if err != nil {
		return domain.PeriodSales{}, fmt.Errorf("sales by date: %w", err)
	}
	return domain.PeriodSales{Period: period, TotalSales: total.Int64}, nil
}

func (s *salesService) SalesByProduct(ctx context.Context, productID int64) (domain.ProductSales, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.ProductSales{}, fmt.Errorf("sales by product: %w", err)
	}
	if product == nil {
		return domain.ProductSales{}, domain.NotFound("product", productID)
	}

	total, err := s.sales.ProductQuantity(ctx, productID)
	if err != nil {
		return domain.ProductSales{}, fmt.Errorf("sales by product: %w", err)
	}
	if total == nil {
		return domain.ProductSales{ProductID: product.ID, ProductName: product.Name}, nil
	}
	return adapters.MapStoreGroupToProductSales(*total), nil
}

func (s *salesService) SalesByCategory(ctx context.Context, categoryID int64) (domain.CategorySales, error) {
	category, err := s.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		return domain.CategorySales{}, fmt.Errorf("sales by category: %w", err)
	}
	if category == nil {
		return domain.CategorySales{}, domain.NotFound("category", categoryID)
	}

	total, err := s.sales.CategoryQuantity(ctx, categoryID)
	if err != nil {
		return domain.CategorySales{}, fmt.Errorf("sales by category: %w", err)
	}
	if total == nil {
		return domain.CategorySales{CategoryID: category.ID, CategoryName: category.Name}, nil
	}
	return adapters.MapStoreGroupToCategorySales(*total), nil
}

func (s *salesService) Analyze(ctx context.Context) (domain.SalesAnalysis, error) {
	totals, err := s.sales.Totals(ctx)
	if err != nil {
		return domain.SalesAnalysis{}, fmt.Errorf("analyze sales: %w", err)
	}
	perProduct, err := s.sales.QuantityPerProduct(ctx)
	if err != nil {
		return domain.SalesAnalysis{}, fmt.Errorf("analyze sales: %w", err)
	}
	perCategory, err := s.sales.QuantityPerCategory(ctx)
	if err != nil {
		return domain.SalesAnalysis{}, fmt.Errorf("analyze sales: %w", err)
	}

	analysis := domain.SalesAnalysis{
		TotalSales:       totals.TotalQuantity.Int64,
		SalesPerProduct:  make([]domain.ProductSales, 0, len(perProduct)),
		SalesPerCategory: make([]domain.CategorySales, 0, len(perCategory)),
	}
	if totals.AverageRevenue.Valid {
		avg := totals.AverageRevenue.Float64
		analysis.AverageRevenue = &avg
	}
	for _, g := range perProduct {
		analysis.SalesPerProduct = append(analysis.SalesPerProduct, adapters.MapStoreGroupToProductSales(g))
	}
	for _, g := range perCategory {
		analysis.SalesPerCategory = append(analysis.SalesPerCategory, adapters.MapStoreGroupToCategorySales(g))
	}
	return analysis, nil
}
