package adapters

import (
	"fmt"

	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/models/store"
)

func MapStoreSaleToDomain(r store.SaleRecord) domain.Sale {
	return domain.Sale{
		ID:       r.ID,
		Date:     domain.Day(r.Date),
		Quantity: r.Quantity,
		Revenue:  r.Revenue,
		Product: domain.ProductRef{
			ID:   r.ProductID,
			Name: r.ProductName,
		},
	}
}

func MapNewSaleToStore(s domain.NewSale, product domain.Product) store.SaleRecord {
	return store.SaleRecord{
		Date:        domain.Day(s.Date),
		Quantity:    s.Quantity,
		Revenue:     s.Revenue,
		ProductID:   product.ID,
		ProductName: product.Name,
	}
}

// MapStoreGroupToProductSales treats a null sum as zero.
func MapStoreGroupToProductSales(g store.GroupTotal) domain.ProductSales {
	return domain.ProductSales{
		ProductID:   g.ID,
		ProductName: g.Name,
		TotalSales:  g.Total.Int64,
	}
}

func MapStoreGroupToCategorySales(g store.GroupTotal) domain.CategorySales {
	return domain.CategorySales{
		CategoryID:   g.ID,
		CategoryName: g.Name,
		TotalSales:   g.Total.Int64,
	}
}

func MapSaleDomainToApi(s domain.Sale) api.Sale {
	return api.Sale{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateLayout),
		Quantity:  s.Quantity,
		Revenue:   s.Revenue,
		ProductID: s.Product.ID,
		Product: api.ProductRef{
			ID:   s.Product.ID,
			Name: s.Product.Name,
		},
	}
}

func MapPeriodSalesDomainToApi(p domain.PeriodSales) api.PeriodSales {
	return api.PeriodSales{
		Date:       p.Period.Label(),
		TotalSales: p.TotalSales,
	}
}

func MapProductSalesDomainToApi(p domain.ProductSales) api.ProductSales {
	return api.ProductSales{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		TotalSales:  p.TotalSales,
	}
}

func MapCategorySalesDomainToApi(c domain.CategorySales) api.CategorySales {
	return api.CategorySales{
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		TotalSales:   c.TotalSales,
	}
}

func MapSalesAnalysisDomainToApi(a domain.SalesAnalysis) api.SalesAnalysis {
	out := api.SalesAnalysis{
		TotalSales:       a.TotalSales,
		AverageRevenue:   a.AverageRevenue,
		SalesPerProduct:  make([]api.ProductSales, 0, len(a.SalesPerProduct)),
		SalesPerCategory: make([]api.CategorySales, 0, len(a.SalesPerCategory)),
	}
	for _, p := range a.SalesPerProduct {
		out.SalesPerProduct = append(out.SalesPerProduct, MapProductSalesDomainToApi(p))
	}
	for _, c := range a.SalesPerCategory {
		out.SalesPerCategory = append(out.SalesPerCategory, MapCategorySalesDomainToApi(c))
	}
	return out
}

// MapSalesAnalysisToReport renders the snapshot for terminal output. The
// snapshot covers all recorded sales, so the report has no period.
func MapSalesAnalysisToReport(a domain.SalesAnalysis) *domain.Report {
	average := "n/a"
	if a.AverageRevenue != nil {
		average = fmt.Sprintf("%.2f", *a.AverageRevenue)
	}

	products := domain.ReportSection{
		Title:   "Units sold per product",
		Summary: map[string]any{"Products with sales": len(a.SalesPerProduct)},
		Details: make([]domain.ReportDetail, 0, len(a.SalesPerProduct)),
	}
	for _, p := range a.SalesPerProduct {
		products.Details = append(products.Details, domain.ReportDetail{
			Name:        p.ProductName,
			Value:       p.TotalSales,
			Unit:        "units",
			Description: fmt.Sprintf("product #%d", p.ProductID),
		})
	}

	categories := domain.ReportSection{
		Title:   "Units sold per category",
		Summary: map[string]any{"Categories with sales": len(a.SalesPerCategory)},
		Details: make([]domain.ReportDetail, 0, len(a.SalesPerCategory)),
	}
	for _, c := range a.SalesPerCategory {
		categories.Details = append(categories.Details, domain.ReportDetail{
			Name:        c.CategoryName,
			Value:       c.TotalSales,
			Unit:        "units",
			Description: fmt.Sprintf("category #%d", c.CategoryID),
		})
	}

	return &domain.Report{
		Title: "Sales Analysis",
		Sections: []domain.ReportSection{
			{
				Title: "Overview",
				Summary: map[string]any{
					"Units sold":             a.TotalSales,
					"Average revenue / sale": average,
				},
			},
			products,
			categories,
		},
	}
}
