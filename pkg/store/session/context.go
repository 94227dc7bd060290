package session

import (
	"context"
	"database/sql"
)

type (
	txKey   struct{}
	connKey struct{}
)

// Queryer is the subset of *sql.DB, *sql.Conn and *sql.Tx used by the stores.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

func WithConnection(ctx context.Context, conn *sql.Conn) context.Context {
	return context.WithValue(ctx, connKey{}, conn)
}

func GetConnection(ctx context.Context) *sql.Conn {
	conn, _ := ctx.Value(connKey{}).(*sql.Conn)
	return conn
}

// Querier returns the narrowest handle bound to ctx: the open transaction,
// then the request connection, then the pool.
func Querier(ctx context.Context, db *sql.DB) Queryer {
	if tx := GetTransaction(ctx); tx != nil {
		return tx
	}
	if conn := GetConnection(ctx); conn != nil {
		return conn
	}
	return db
}
