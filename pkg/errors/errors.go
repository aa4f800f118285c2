package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUndefinedTable  = "42P01"
	CodeUndefinedColumn = "42703"
	CodeSyntaxError     = "42601"
	CodeInvalidRegex    = "2201B"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsUndefinedTable(err error) bool {
	return Is(err, CodeUndefinedTable)
}

func IsUndefinedColumn(err error) bool {
	return Is(err, CodeUndefinedColumn)
}

func IsSyntaxError(err error) bool {
	return Is(err, CodeSyntaxError)
}

// IsConnectionError reports whether err came from establishing the
// connection rather than from a statement.
func IsConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
