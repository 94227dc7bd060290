package revenue

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/models/store"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/rs/zerolog"
)

// Store aggregates Sale.revenue. Date bounds are inclusive calendar days.
type Store interface {
	TotalRevenue(ctx context.Context, start, end time.Time) (sql.NullFloat64, error)
	// DailyRevenue returns one row per date that has sales, ascending.
	DailyRevenue(ctx context.Context, start, end time.Time) ([]store.DailyRevenue, error)
	ProductsRevenue(ctx context.Context, productIDs []int64) ([]store.GroupRevenue, error)
	CategoriesRevenue(ctx context.Context, categoryIDs []int64) ([]store.GroupRevenue, error)
}

type revenueStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &revenueStore{
		db: db,
	}, nil
}

func (s *revenueStore) TotalRevenue(ctx context.Context, start, end time.Time) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	err := session.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT SUM(revenue) FROM sales WHERE date >= ? AND date <= ?`, start, end,
	).Scan(&total)
	if err != nil {
		return sql.NullFloat64{}, fmt.Errorf("sum revenue: %w", err)
	}
	return total, nil
}

func (s *revenueStore) DailyRevenue(ctx context.Context, start, end time.Time) ([]store.DailyRevenue, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := session.Querier(ctx, s.db).QueryContext(ctx, `
		SELECT date, SUM(revenue)
		FROM sales
		WHERE date >= ? AND date <= ?
		GROUP BY date
		ORDER BY date`, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily revenue: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close daily revenue rows")
		}
	}(rows)

	records := make([]store.DailyRevenue, 0)
	for rows.Next() {
		var r store.DailyRevenue
		if err := rows.Scan(&r.Date, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *revenueStore) ProductsRevenue(ctx context.Context, productIDs []int64) ([]store.GroupRevenue, error) {
	if len(productIDs) == 0 {
		return []store.GroupRevenue{}, nil
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.name, SUM(s.revenue)
		FROM products p
		JOIN sales s ON p.id = s.product_id
		WHERE p.id IN (%s)
		GROUP BY p.id, p.name
		ORDER BY p.id`, session.Placeholders(len(productIDs)))

	return s.groupRevenue(ctx, query, session.Int64Args(productIDs))
}

func (s *revenueStore) CategoriesRevenue(ctx context.Context, categoryIDs []int64) ([]store.GroupRevenue, error) {
	if len(categoryIDs) == 0 {
		return []store.GroupRevenue{}, nil
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.name, SUM(s.revenue)
		FROM categories c
		JOIN products p ON p.category_id = c.id
		JOIN sales s ON p.id = s.product_id
		WHERE c.id IN (%s)
		GROUP BY c.id, c.name
		ORDER BY c.id`, session.Placeholders(len(categoryIDs)))

	return s.groupRevenue(ctx, query, session.Int64Args(categoryIDs))
}

func (s *revenueStore) groupRevenue(ctx context.Context, query string, args []any) ([]store.GroupRevenue, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := session.Querier(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query group revenue: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close group revenue rows")
		}
	}(rows)

	records := make([]store.GroupRevenue, 0)
	for rows.Next() {
		var r store.GroupRevenue
		if err := rows.Scan(&r.ID, &r.Name, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scan group revenue: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
