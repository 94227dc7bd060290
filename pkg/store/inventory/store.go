package inventory

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

type Store interface {
	// ListLevels returns one entry per inventory row joined with its product.
	// Products without inventory rows are not returned.
	ListLevels(ctx context.Context) ([]store.InventoryLevel, error)
	// GetByProduct returns the first inventory row of a product, or nil.
	GetByProduct(ctx context.Context, productID int64) (*store.InventoryRecord, error)
	// ApplyDelta adds delta to the product's first inventory row, creating the
	// row at delta when none exists, and returns the new quantity.
	ApplyDelta(ctx context.Context, productID int64, delta int, date time.Time) (int, error)
}

type inventoryStore struct {
	db      *sql.DB
	dialect session.Dialect
}

func NewStore(db *sql.DB, dialect session.Dialect) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &inventoryStore{
		db:      db,
		dialect: dialect,
	}, nil
}

func (s *inventoryStore) ListLevels(ctx context.Context) ([]store.InventoryLevel, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := session.Querier(ctx, s.db).QueryContext(ctx, `
		SELECT p.id, p.name, i.quantity
		FROM products p
		JOIN inventory i ON p.id = i.product_id
		ORDER BY p.id, i.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close inventory rows")
		}
	}(rows)

	levels := make([]store.InventoryLevel, 0)
	for rows.Next() {
		var l store.InventoryLevel
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (s *inventoryStore) GetByProduct(ctx context.Context, productID int64) (*store.InventoryRecord, error) {
	var rec store.InventoryRecord
	err := session.Querier(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, date, quantity, product_id
		FROM inventory
		WHERE product_id = ?
		ORDER BY id
		LIMIT 1`, productID,
	).Scan(&rec.ID, &rec.Date, &rec.Quantity, &rec.ProductID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory row: %w", err)
	}
	return &rec, nil
}

func (s *inventoryStore) ApplyDelta(ctx context.Context, productID int64, delta int, date time.Time) (int, error) {
	var quantity int
	err := session.RunInTx(ctx, s.db, func(ctx context.Context) error {
		q := session.Querier(ctx, s.db)

		current, err := s.GetByProduct(ctx, productID)
		if err != nil {
			return err
		}

		if current == nil {
			_, err := s.dialect.InsertID(ctx, q,
				`INSERT INTO inventory (date, quantity, product_id) VALUES (?, ?, ?)`,
				date, delta, productID)
			if err != nil {
				return fmt.Errorf("insert inventory: %w", err)
			}
			quantity = delta
			return nil
		}

		// Increment in SQL so a concurrent writer's delta is not overwritten.
		if _, err := q.ExecContext(ctx,
			`UPDATE inventory SET quantity = quantity + ? WHERE id = ?`, delta, current.ID); err != nil {
			return fmt.Errorf("update inventory: %w", err)
		}

		err = q.QueryRowContext(ctx, `SELECT quantity FROM inventory WHERE id = ?`, current.ID).Scan(&quantity)
		if err != nil {
			return fmt.Errorf("read inventory quantity: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return quantity, nil
}
