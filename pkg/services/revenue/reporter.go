package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/store/revenue"
	"github.com/rs/zerolog"
)

// Default window sizes for the relative revenue reports.
const (
	DefaultDays   = 7
	DefaultWeeks  = 4
	DefaultMonths = 6
	DefaultYears  = 3
)

type Reporter interface {
	TotalRevenue(ctx context.Context, period domain.DateRange) (domain.RevenueTotal, error)
	// Buckets folds revenue over an explicit range into calendar periods.
	Buckets(ctx context.Context, granularity domain.Granularity, period domain.DateRange) ([]domain.RevenueBucket, error)
	Daily(ctx context.Context, days int) ([]domain.RevenueBucket, error)
	Weekly(ctx context.Context, weeks int) ([]domain.RevenueBucket, error)
	Monthly(ctx context.Context, months int) ([]domain.RevenueBucket, error)
	Annual(ctx context.Context, years int) ([]domain.RevenueBucket, error)
	ByProducts(ctx context.Context, productIDs []int64) ([]domain.ProductRevenue, error)
	ByCategories(ctx context.Context, categoryIDs []int64) ([]domain.CategoryRevenue, error)
	BuildRevenueReport(ctx context.Context, granularity domain.Granularity, periods int, currency string) (*domain.Report, error)
}

type revenueReporter struct {
	store revenue.Store
	now   func() time.Time
}

func NewReporter(store revenue.Store, now func() time.Time) Reporter {
	if now == nil {
		now = time.Now
	}
	return &revenueReporter{
		store: store,
		now:   now,
	}
}

func (r *revenueReporter) TotalRevenue(ctx context.Context, period domain.DateRange) (domain.RevenueTotal, error) {
	total, err := r.store.TotalRevenue(ctx, period.Start, period.End)
	if err != nil {
		return domain.RevenueTotal{}, fmt.Errorf("total revenue: %w", err)
	}
	return adapters.MapStoreRevenueTotalToDomain(period, total.Float64), nil
}

func (r *revenueReporter) Buckets(
	ctx context.Context,
	granularity domain.Granularity,
	period domain.DateRange,
) ([]domain.RevenueBucket, error) {
	key, err := keyFor(granularity)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.DailyRevenue(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("%s revenue: %w", granularity, err)
	}

	days := make([]domain.DailyRevenue, 0, len(rows))
	for _, row := range rows {
		days = append(days, adapters.MapStoreDailyRevenueToDomain(row))
	}

	buckets := fold(days, key)
	zerolog.Ctx(ctx).Debug().
		Str("granularity", string(granularity)).
		Str("period", period.Label()).
		Int("days", len(days)).
		Int("buckets", len(buckets)).
		Msg("revenue folded")
	return buckets, nil
}

func (r *revenueReporter) relative(ctx context.Context, granularity domain.Granularity, n int) ([]domain.RevenueBucket, error) {
	period, err := Window(granularity, r.now(), n)
	if err != nil {
		return nil, err
	}
	return r.Buckets(ctx, granularity, period)
}

func (r *revenueReporter) Daily(ctx context.Context, days int) ([]domain.RevenueBucket, error) {
	return r.relative(ctx, domain.GranularityDaily, days)
}

func (r *revenueReporter) Weekly(ctx context.Context, weeks int) ([]domain.RevenueBucket, error) {
	return r.relative(ctx, domain.GranularityWeekly, weeks)
}

func (r *revenueReporter) Monthly(ctx context.Context, months int) ([]domain.RevenueBucket, error) {
	return r.relative(ctx, domain.GranularityMonthly, months)
}

func (r *revenueReporter) Annual(ctx context.Context, years int) ([]domain.RevenueBucket, error) {
	return r.relative(ctx, domain.GranularityAnnual, years)
}

func (r *revenueReporter) ByProducts(ctx context.Context, productIDs []int64) ([]domain.ProductRevenue, error) {
	rows, err := r.store.ProductsRevenue(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("revenue by products: %w", err)
	}

	result := make([]domain.ProductRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, adapters.MapStoreGroupToProductRevenue(row))
	}
	return result, nil
}

func (r *revenueReporter) ByCategories(ctx context.Context, categoryIDs []int64) ([]domain.CategoryRevenue, error) {
	rows, err := r.store.CategoriesRevenue(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("revenue by categories: %w", err)
	}

	result := make([]domain.CategoryRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, adapters.MapStoreGroupToCategoryRevenue(row))
	}
	return result, nil
}

var sectionTitles = map[domain.Granularity]string{
	domain.GranularityDaily:   "Revenue per day",
	domain.GranularityWeekly:  "Revenue per ISO week",
	domain.GranularityMonthly: "Revenue per month",
	domain.GranularityAnnual:  "Revenue per year",
}

// BuildRevenueReport assembles a terminal report over the last periods
// calendar periods of the given granularity.
func (r *revenueReporter) BuildRevenueReport(
	ctx context.Context,
	granularity domain.Granularity,
	periods int,
	currency string,
) (*domain.Report, error) {
	period, err := Window(granularity, r.now(), periods)
	if err != nil {
		return nil, err
	}
	buckets, err := r.Buckets(ctx, granularity, period)
	if err != nil {
		return nil, err
	}

	total := sum(buckets)
	details := make([]domain.ReportDetail, 0, len(buckets))
	for _, b := range buckets {
		details = append(details, domain.ReportDetail{
			Name:        b.Label,
			Value:       b.TotalRevenue.StringFixed(2),
			Unit:        currency,
			Description: fmt.Sprintf("first sale on %s", b.Start.Format(domain.DateLayout)),
		})
	}

	return &domain.Report{
		Title: fmt.Sprintf("Revenue Report: %s", granularity),
		Period: domain.TimePeriod{
			DateRange: period,
			Duration:  period.Days(),
		},
		Sections: []domain.ReportSection{
			{
				Title: sectionTitles[granularity],
				Summary: map[string]any{
					"Periods with sales": len(buckets),
					"Total revenue":      total.StringFixed(2),
				},
				Details: details,
			},
		},
		TotalAmount: total.InexactFloat64(),
		Currency:    currency,
	}, nil
}
