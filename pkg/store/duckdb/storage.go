package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const CategoriesSchema = `
	CREATE SEQUENCE IF NOT EXISTS categories_id_seq START 1;
	CREATE TABLE IF NOT EXISTS categories (
		id BIGINT PRIMARY KEY DEFAULT nextval('categories_id_seq'),
		name VARCHAR(255) NOT NULL
	);
`

const ProductsSchema = `
	CREATE SEQUENCE IF NOT EXISTS products_id_seq START 1;
	CREATE TABLE IF NOT EXISTS products (
		id BIGINT PRIMARY KEY DEFAULT nextval('products_id_seq'),
		name VARCHAR(255) NOT NULL,
		description VARCHAR(1000),
		price DOUBLE NOT NULL,
		category_id BIGINT NOT NULL REFERENCES categories(id)
	);
	CREATE INDEX IF NOT EXISTS idx_product_name ON products(name);
`

const InventorySchema = `
	CREATE SEQUENCE IF NOT EXISTS inventory_id_seq START 1;
	CREATE TABLE IF NOT EXISTS inventory (
		id BIGINT PRIMARY KEY DEFAULT nextval('inventory_id_seq'),
		date DATE NOT NULL,
		quantity INTEGER NOT NULL,
		product_id BIGINT NOT NULL REFERENCES products(id)
	);
	CREATE INDEX IF NOT EXISTS idx_inventory_date ON inventory(date);
`

const SalesSchema = `
	CREATE SEQUENCE IF NOT EXISTS sales_id_seq START 1;
	CREATE TABLE IF NOT EXISTS sales (
		id BIGINT PRIMARY KEY DEFAULT nextval('sales_id_seq'),
		date DATE NOT NULL,
		quantity INTEGER NOT NULL,
		revenue DOUBLE NOT NULL,
		product_id BIGINT NOT NULL REFERENCES products(id)
	);
	CREATE INDEX IF NOT EXISTS idx_sale_date ON sales(date);
	CREATE INDEX IF NOT EXISTS idx_sale_product_id ON sales(product_id);
`

var bootQueries = []string{
	CategoriesSchema,
	ProductsSchema,
	InventorySchema,
	SalesSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

// NewDB opens a DuckDB pool and creates missing schema objects once. The
// statements must not run per connection: concurrent DDL on a shared catalog
// fails with write-write conflicts.
func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", settings.DbPath, threads), nil)
	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	for _, query := range bootQueries {
		if _, err := db.ExecContext(context.Background(), query); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return db, nil
}
