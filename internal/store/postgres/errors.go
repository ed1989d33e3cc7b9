package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

var (
	errNilPostgresClient = errors.New("postgres client is nil")
	errUndefinedTable    = errors.New("undefined table")
	errUndefinedColumn   = errors.New("undefined column")
)

// checkPostgresError translates driver errors worth distinguishing for
// callers; anything else passes through unchanged.
func checkPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable:
			return fmt.Errorf("%w [%s]", errUndefinedTable, pgErr.Message)
		case pgerrcode.UndefinedColumn:
			return fmt.Errorf("%w [%s]", errUndefinedColumn, pgErr.Message)
		}
	}
	return err
}
