package mysql

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getMySQLDSN(t *testing.T) string {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		t.Skip("MYSQL_DSN not set")
	}
	return dsn
}

func TestNewDB_InvalidDSN(t *testing.T) {
	_, err := NewDB(context.Background(), Settings{DSN: "not a dsn"})
	assert.Error(t, err)
}

func TestNewDB_BootstrapsSchema(t *testing.T) {
	dsn := getMySQLDSN(t)

	db, err := NewDB(context.Background(), Settings{DSN: dsn})
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"categories", "products", "inventory", "sales"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		assert.NoError(t, err, table)
	}
}
