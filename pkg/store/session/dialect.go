package session

import (
	"context"
	"fmt"
	"strings"
)

// Dialect captures the few places where the supported engines disagree.
type Dialect struct {
	Name string
	// ReturningID is set when INSERT ... RETURNING id is available; otherwise
	// the driver's LastInsertId is used.
	ReturningID bool
	// IntegerType is the CAST target for 64-bit integer aggregates.
	IntegerType string
}

var (
	DuckDB = Dialect{Name: "duckdb", ReturningID: true, IntegerType: "BIGINT"}
	MySQL  = Dialect{Name: "mysql", ReturningID: false, IntegerType: "SIGNED"}
)

// SumInt renders SUM(expr) cast to a 64-bit integer. DuckDB widens integer
// sums to HUGEINT, which database/sql cannot scan into int64.
func (d Dialect) SumInt(expr string) string {
	return fmt.Sprintf("CAST(SUM(%s) AS %s)", expr, d.IntegerType)
}

// InsertID executes an INSERT statement and returns the generated id.
func (d Dialect) InsertID(ctx context.Context, q Queryer, query string, args ...any) (int64, error) {
	if d.ReturningID {
		var id int64
		if err := q.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Placeholders returns "?, ?, ..." for n bind parameters.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func Int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
