package sales

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/models/store"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/rs/zerolog"
)

// Store runs sale queries. Quantity sums are returned as nullable values;
// deciding what an empty aggregate means is left to the caller.
type Store interface {
	CreateSale(ctx context.Context, sale store.SaleRecord) (*store.SaleRecord, error)
	ListSales(ctx context.Context, offset, limit int) ([]store.SaleRecord, error)

	SumQuantity(ctx context.Context, start, end time.Time) (sql.NullInt64, error)
	// ProductQuantity returns nil when the product has no sales.
	ProductQuantity(ctx context.Context, productID int64) (*store.GroupTotal, error)
	// CategoryQuantity returns nil when no product of the category has sales.
	CategoryQuantity(ctx context.Context, categoryID int64) (*store.GroupTotal, error)

	Totals(ctx context.Context) (*store.SalesTotals, error)
	QuantityPerProduct(ctx context.Context) ([]store.GroupTotal, error)
	QuantityPerCategory(ctx context.Context) ([]store.GroupTotal, error)
}

type salesStore struct {
	db      *sql.DB
	dialect session.Dialect
}

func NewStore(db *sql.DB, dialect session.Dialect) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &salesStore{
		db:      db,
		dialect: dialect,
	}, nil
}

func (s *salesStore) CreateSale(ctx context.Context, sale store.SaleRecord) (*store.SaleRecord, error) {
	q := session.Querier(ctx, s.db)
	id, err := s.dialect.InsertID(ctx, q, `
		INSERT INTO sales (date, quantity, revenue, product_id)
		VALUES (?, ?, ?, ?)`,
		sale.Date, sale.Quantity, sale.Revenue, sale.ProductID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	created := sale
	created.ID = id
	return &created, nil
}

func (s *salesStore) ListSales(ctx context.Context, offset, limit int) ([]store.SaleRecord, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := session.Querier(ctx, s.db).QueryContext(ctx, `
		SELECT s.id, s.date, s.quantity, s.revenue, p.id, p.name
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close sales rows")
		}
	}(rows)

	records := make([]store.SaleRecord, 0)
	for rows.Next() {
		var r store.SaleRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Quantity, &r.Revenue, &r.ProductID, &r.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *salesStore) SumQuantity(ctx context.Context, start, end time.Time) (sql.NullInt64, error) {
	query := fmt.Sprintf(`SELECT %s FROM sales WHERE date >= ? AND date <= ?`, s.dialect.SumInt("quantity"))

	var total sql.NullInt64
	if err := session.Querier(ctx, s.db).QueryRowContext(ctx, query, start, end).Scan(&total); err != nil {
		return sql.NullInt64{}, fmt.Errorf("sum sales quantity: %w", err)
	}
	return total, nil
}

func (s *salesStore) ProductQuantity(ctx context.Context, productID int64) (*store.GroupTotal, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.name, %s
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.product_id = ?
		GROUP BY p.id, p.name`, s.dialect.SumInt("s.quantity"))

	return s.groupTotal(ctx, query, productID)
}

func (s *salesStore) CategoryQuantity(ctx context.Context, categoryID int64) (*store.GroupTotal, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.name, %s
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE c.id = ?
		GROUP BY c.id, c.name`, s.dialect.SumInt("s.quantity"))

	return s.groupTotal(ctx, query, categoryID)
}

func (s *salesStore) groupTotal(ctx context.Context, query string, id int64) (*store.GroupTotal, error) {
	var g store.GroupTotal
	err := session.Querier(ctx, s.db).QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sum group quantity: %w", err)
	}
	return &g, nil
}

func (s *salesStore) Totals(ctx context.Context) (*store.SalesTotals, error) {
	query := fmt.Sprintf(`SELECT %s, AVG(revenue) FROM sales`, s.dialect.SumInt("quantity"))

	var totals store.SalesTotals
	err := session.Querier(ctx, s.db).QueryRowContext(ctx, query).Scan(&totals.TotalQuantity, &totals.AverageRevenue)
	if err != nil {
		return nil, fmt.Errorf("query sales totals: %w", err)
	}
	return &totals, nil
}

func (s *salesStore) QuantityPerProduct(ctx context.Context) ([]store.GroupTotal, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.name, %s
		FROM products p
		JOIN sales s ON p.id = s.product_id
		GROUP BY p.id, p.name
		ORDER BY p.id`, s.dialect.SumInt("s.quantity"))

	return s.groupTotals(ctx, query)
}

func (s *salesStore) QuantityPerCategory(ctx context.Context) ([]store.GroupTotal, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.name, %s
		FROM categories c
		JOIN products p ON p.category_id = c.id
		JOIN sales s ON p.id = s.product_id
		GROUP BY c.id, c.name
		ORDER BY c.id`, s.dialect.SumInt("s.quantity"))

	return s.groupTotals(ctx, query)
}

func (s *salesStore) groupTotals(ctx context.Context, query string) ([]store.GroupTotal, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := session.Querier(ctx, s.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query group quantities: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close group rows")
		}
	}(rows)

	totals := make([]store.GroupTotal, 0)
	for rows.Next() {
		var g store.GroupTotal
		if err := rows.Scan(&g.ID, &g.Name, &g.Total); err != nil {
			return nil, fmt.Errorf("scan group quantity: %w", err)
		}
		totals = append(totals, g)
	}
	return totals, rows.Err()
}
