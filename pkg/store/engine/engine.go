package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/commerce-atlas/pkg/store/duckdb"
	"github.com/de-tools/commerce-atlas/pkg/store/mysql"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
)

const (
	DriverDuckDB = "duckdb"
	DriverMySQL  = "mysql"
)

type Settings struct {
	Driver string
	DSN    string
}

// Open connects to the configured engine and returns the pool with the
// dialect its queries must be rendered in.
func Open(ctx context.Context, settings Settings) (*sql.DB, session.Dialect, error) {
	switch settings.Driver {
	case DriverDuckDB, "":
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.DSN})
		if err != nil {
			return nil, session.Dialect{}, fmt.Errorf("open duckdb: %w", err)
		}
		return db, session.DuckDB, nil
	case DriverMySQL:
		db, err := mysql.NewDB(ctx, mysql.Settings{DSN: settings.DSN})
		if err != nil {
			return nil, session.Dialect{}, fmt.Errorf("open mysql: %w", err)
		}
		return db, session.MySQL, nil
	default:
		return nil, session.Dialect{}, fmt.Errorf("unsupported store driver %q", settings.Driver)
	}
}
