package adapters

import (
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

// money converts a store amount to cents. Float sums of cent values carry
// representation noise below a cent.
func money(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

func MapStoreDailyRevenueToDomain(r store.DailyRevenue) domain.DailyRevenue {
	return domain.DailyRevenue{
		Date:         domain.Day(r.Date),
		TotalRevenue: money(r.Revenue),
	}
}

func MapStoreGroupToProductRevenue(r store.GroupRevenue) domain.ProductRevenue {
	return domain.ProductRevenue{
		ProductID:    r.ID,
		ProductName:  r.Name,
		TotalRevenue: money(r.Revenue),
	}
}

func MapStoreGroupToCategoryRevenue(r store.GroupRevenue) domain.CategoryRevenue {
	return domain.CategoryRevenue{
		CategoryID:   r.ID,
		CategoryName: r.Name,
		TotalRevenue: money(r.Revenue),
	}
}

func MapStoreRevenueTotalToDomain(period domain.DateRange, total float64) domain.RevenueTotal {
	return domain.RevenueTotal{
		Period:       period,
		TotalRevenue: money(total),
	}
}

func MapRevenueTotalDomainToApi(t domain.RevenueTotal) api.RevenueTimePeriod {
	return api.RevenueTimePeriod{
		TimePeriod:   t.Period.Label(),
		TotalRevenue: t.TotalRevenue.InexactFloat64(),
	}
}

func MapDailyRevenueDomainToApi(buckets []domain.RevenueBucket) []api.RevenueDaily {
	out := make([]api.RevenueDaily, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.RevenueDaily{Date: b.Label, TotalRevenue: b.TotalRevenue.InexactFloat64()})
	}
	return out
}

func MapWeeklyRevenueDomainToApi(buckets []domain.RevenueBucket) []api.RevenueWeekly {
	out := make([]api.RevenueWeekly, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.RevenueWeekly{Week: b.Label, TotalRevenue: b.TotalRevenue.InexactFloat64()})
	}
	return out
}

func MapMonthlyRevenueDomainToApi(buckets []domain.RevenueBucket) []api.RevenueMonthly {
	out := make([]api.RevenueMonthly, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.RevenueMonthly{Month: b.Label, TotalRevenue: b.TotalRevenue.InexactFloat64()})
	}
	return out
}

func MapAnnualRevenueDomainToApi(buckets []domain.RevenueBucket) []api.RevenueAnnual {
	out := make([]api.RevenueAnnual, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.RevenueAnnual{Year: b.Label, TotalRevenue: b.TotalRevenue.InexactFloat64()})
	}
	return out
}

func MapProductRevenueDomainToApi(r domain.ProductRevenue) api.RevenueProduct {
	return api.RevenueProduct{
		ProductID:    r.ProductID,
		Product:      r.ProductName,
		TotalRevenue: r.TotalRevenue.InexactFloat64(),
	}
}

func MapCategoryRevenueDomainToApi(r domain.CategoryRevenue) api.RevenueCategory {
	return api.RevenueCategory{
		CategoryID:   r.CategoryID,
		Category:     r.CategoryName,
		TotalRevenue: r.TotalRevenue.InexactFloat64(),
	}
}
