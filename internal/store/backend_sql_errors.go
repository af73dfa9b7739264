package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPostgresError extracts a short diagnostic label from a postgres
// driver error for log output. Non-postgres errors yield an empty string.
func classifyPostgresError(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}

	if pgerrcode.IsConnectionException(pgErr.Code) {
		return "connection:" + pgErr.Code
	}
	return pgErr.Code
}
