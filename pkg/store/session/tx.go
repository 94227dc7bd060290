package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// RunInTx runs fn inside a transaction begun on the request connection (or the
// pool when ctx carries none). A transaction already present in ctx is reused,
// and committing it is left to its owner.
func RunInTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	if GetTransaction(ctx) != nil {
		return fn(ctx)
	}

	var (
		tx  *sql.Tx
		err error
	)
	if conn := GetConnection(ctx); conn != nil {
		tx, err = conn.BeginTx(ctx, nil)
	} else {
		tx, err = db.BeginTx(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(WithTransaction(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rbErr).Msg("failed to roll back transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Transactor runs units of work atomically.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type dbTransactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) Transactor {
	return &dbTransactor{db: db}
}

func (t *dbTransactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return RunInTx(ctx, t.db, fn)
}
