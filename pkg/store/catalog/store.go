package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/commerce-atlas/pkg/models/store"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/rs/zerolog"
)

// Store reads and writes categories and products.
// Point lookups return (nil, nil) when the row does not exist.
type Store interface {
	CreateCategory(ctx context.Context, name string) (*store.Category, error)
	GetCategory(ctx context.Context, id int64) (*store.Category, error)
	ListCategories(ctx context.Context, offset, limit int) ([]store.Category, error)

	CreateProduct(ctx context.Context, product store.ProductRecord) (*store.ProductRecord, error)
	GetProduct(ctx context.Context, id int64) (*store.ProductRecord, error)
	ListProducts(ctx context.Context, offset, limit int) ([]store.ProductRecord, error)
}

type catalogStore struct {
	db      *sql.DB
	dialect session.Dialect
}

func NewStore(db *sql.DB, dialect session.Dialect) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &catalogStore{
		db:      db,
		dialect: dialect,
	}, nil
}

func (s *catalogStore) CreateCategory(ctx context.Context, name string) (*store.Category, error) {
	q := session.Querier(ctx, s.db)
	id, err := s.dialect.InsertID(ctx, q, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &store.Category{ID: id, Name: name}, nil
}

func (s *catalogStore) GetCategory(ctx context.Context, id int64) (*store.Category, error) {
	var c store.Category
	err := session.Querier(ctx, s.db).
		QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	return &c, nil
}

func (s *catalogStore) ListCategories(ctx context.Context, offset, limit int) ([]store.Category, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := session.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close category rows")
		}
	}(rows)

	categories := make([]store.Category, 0)
	for rows.Next() {
		var c store.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *catalogStore) CreateProduct(ctx context.Context, product store.ProductRecord) (*store.ProductRecord, error) {
	q := session.Querier(ctx, s.db)
	id, err := s.dialect.InsertID(ctx, q, `
		INSERT INTO products (name, description, price, category_id)
		VALUES (?, ?, ?, ?)`,
		product.Name, product.Description, product.Price, product.CategoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := product
	created.ID = id
	return &created, nil
}

const productColumns = `
	SELECT p.id, p.name, COALESCE(p.description, ''), p.price, c.id, c.name
	FROM products p
	JOIN categories c ON c.id = p.category_id`

func (s *catalogStore) GetProduct(ctx context.Context, id int64) (*store.ProductRecord, error) {
	var p store.ProductRecord
	err := session.Querier(ctx, s.db).
		QueryRowContext(ctx, productColumns+` WHERE p.id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.CategoryName)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func (s *catalogStore) ListProducts(ctx context.Context, offset, limit int) ([]store.ProductRecord, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := session.Querier(ctx, s.db).QueryContext(ctx,
		productColumns+` ORDER BY p.id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close product rows")
		}
	}(rows)

	products := make([]store.ProductRecord, 0)
	for rows.Next() {
		var p store.ProductRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
