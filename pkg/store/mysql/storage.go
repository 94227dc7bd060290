package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const CategoriesSchema = `
	CREATE TABLE IF NOT EXISTS categories (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`

const ProductsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description VARCHAR(1000) NULL,
		price DOUBLE NOT NULL,
		category_id BIGINT NOT NULL,
		INDEX idx_product_name (name),
		CONSTRAINT fk_products_category FOREIGN KEY (category_id) REFERENCES categories (id)
	)`

const InventorySchema = `
	CREATE TABLE IF NOT EXISTS inventory (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		date DATE NOT NULL,
		quantity INT NOT NULL,
		product_id BIGINT NOT NULL,
		INDEX idx_inventory_date (date),
		CONSTRAINT fk_inventory_product FOREIGN KEY (product_id) REFERENCES products (id)
	)`

const SalesSchema = `
	CREATE TABLE IF NOT EXISTS sales (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		date DATE NOT NULL,
		quantity INT NOT NULL,
		revenue DOUBLE NOT NULL,
		product_id BIGINT NOT NULL,
		INDEX idx_sale_date (date),
		INDEX idx_sale_product_id (product_id),
		CONSTRAINT fk_sales_product FOREIGN KEY (product_id) REFERENCES products (id)
	)`

var bootQueries = []string{
	CategoriesSchema,
	ProductsSchema,
	InventorySchema,
	SalesSchema,
}

type Settings struct {
	DSN string
}

// NewDB opens a MySQL pool and creates missing tables. DATE columns are
// scanned into time.Time, so parseTime is forced on.
func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return db, nil
}
