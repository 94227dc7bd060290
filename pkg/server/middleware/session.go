package middleware

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/de-tools/commerce-atlas/pkg/handlers/respond"
	"github.com/de-tools/commerce-atlas/pkg/store/session"
	"github.com/rs/zerolog"
)

// Session pins one pooled connection to each request. The connection is
// returned to the pool when the handler exits, panics included.
func Session(db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			logger := zerolog.Ctx(ctx)

			conn, err := db.Conn(ctx)
			if err != nil {
				respond.Error(w, req, fmt.Errorf("acquire connection: %w", err))
				return
			}
			defer func() {
				if err := conn.Close(); err != nil {
					logger.Warn().Err(err).Msg("failed to release connection")
				}
			}()

			next.ServeHTTP(w, req.WithContext(session.WithConnection(ctx, conn)))
		})
	}
}
