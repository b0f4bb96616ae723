package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no row matches the requested primary key.
	ErrNotFound = errors.New("record not found")
	// ErrCampusNotFound is returned when a student write references a campus
	// that does not exist.
	ErrCampusNotFound = errors.New("referenced campus does not exist")
)

// isForeignKeyViolation reports whether err is a PostgreSQL foreign_key_violation (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
