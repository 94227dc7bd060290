package inventory

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/commerce-atlas/pkg/models/store"
	"github.com/de-tools/commerce-atlas/pkg/store/duckdb"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db, session.DuckDB)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func (f *fixture) addProduct(t *testing.T, name string) int64 {
	t.Helper()
	var categoryID, productID int64
	require.NoError(t, f.db.QueryRow(`INSERT INTO categories (name) VALUES (?) RETURNING id`, "General").Scan(&categoryID))
	require.NoError(t, f.db.QueryRow(
		`INSERT INTO products (name, description, price, category_id) VALUES (?, '', 1.0, ?) RETURNING id`,
		name, categoryID,
	).Scan(&productID))
	return productID
}

func (f *fixture) countRows(t *testing.T, productID int64) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM inventory WHERE product_id = ?`, productID).Scan(&n))
	return n
}

func TestNewStore_NilDB(t *testing.T) {
	s, err := NewStore(nil, session.DuckDB)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestStore_ApplyDelta(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	today := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	productID := f.addProduct(t, "Widget")

	t.Run("first delta seeds the row", func(t *testing.T) {
		qty, err := f.store.ApplyDelta(ctx, productID, 7, today)
		require.NoError(t, err)
		assert.Equal(t, 7, qty)
		assert.Equal(t, 1, f.countRows(t, productID))
	})

	t.Run("subsequent deltas are additive", func(t *testing.T) {
		qty, err := f.store.ApplyDelta(ctx, productID, 5, today)
		require.NoError(t, err)
		assert.Equal(t, 12, qty)
		assert.Equal(t, 1, f.countRows(t, productID))
	})

	t.Run("quantity may go negative", func(t *testing.T) {
		qty, err := f.store.ApplyDelta(ctx, productID, -20, today)
		require.NoError(t, err)
		assert.Equal(t, -8, qty)
	})

	t.Run("row keeps its creation date", func(t *testing.T) {
		rec, err := f.store.GetByProduct(ctx, productID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, today, rec.Date.UTC())
		assert.Equal(t, -8, rec.Quantity)
	})
}

func TestStore_ListLevels(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	today := time.Now().UTC()

	stocked := f.addProduct(t, "Stocked")
	_ = f.addProduct(t, "Never stocked")

	_, err := f.store.ApplyDelta(ctx, stocked, 5, today)
	require.NoError(t, err)

	levels, err := f.store.ListLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.InventoryLevel{
		{ProductID: stocked, ProductName: "Stocked", Quantity: 5},
	}, levels)
}

func TestStore_ApplyDelta_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db, session.DuckDB)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, date, quantity, product_id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "quantity", "product_id"}).
			AddRow(int64(11), time.Now(), 4, int64(3)))
	mock.ExpectExec("UPDATE inventory SET quantity").
		WithArgs(2, int64(11)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = s.ApplyDelta(context.Background(), 3, 2, time.Now())
	assert.ErrorContains(t, err, "update inventory: disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}
