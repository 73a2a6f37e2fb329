package dbops

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucrnz/qakit/internal/logging"
)

// ErrDatabase matches every error returned by this package.
var ErrDatabase = errors.New("database error")

// Error wraps a failure from the database or its driver.
type Error struct {
	Op     string
	Driver string
	Query  string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrDatabase }

// fail wraps err for op and logs it. It returns nil for a nil err.
func fail(ctx context.Context, op string, c Conn, query string, err error) error {
	if err == nil {
		return nil
	}
	logging.FromContext(ctx).Error("db_op_failed",
		"op", op,
		"driver", c.Driver,
		"error", err,
	)
	return &Error{Op: op, Driver: c.Driver, Query: query, Err: err}
}

// Query runs query and returns every row.
func Query(ctx context.Context, c Conn, query string, args ...any) (rows []Row, err error) {
	defer func() { err = fail(ctx, "query", c, query, err) }()

	db, _, err := open(ctx, c)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return queryRows(ctx, db, query, args...)
}

// Exec runs a statement that returns no rows and reports the affected-row count.
func Exec(ctx context.Context, c Conn, stmt string, args ...any) (affected int64, err error) {
	defer func() { err = fail(ctx, "exec", c, stmt, err) }()

	db, _, err := open(ctx, c)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Scalar returns the first column of the first row, or a Null value when the
// query returns no rows.
func Scalar(ctx context.Context, c Conn, query string, args ...any) (v Value, err error) {
	defer func() { err = fail(ctx, "scalar", c, query, err) }()

	db, _, err := open(ctx, c)
	if err != nil {
		return Value{}, err
	}
	defer db.Close()

	return scalar(ctx, db, query, args...)
}

// TableNames lists the user tables: the public schema on postgres, and
// sqlite_master entries of type table on sqlite.
func TableNames(ctx context.Context, c Conn) (names []string, err error) {
	var query string
	defer func() { err = fail(ctx, "table names", c, query, err) }()

	db, d, err := open(ctx, c)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	switch d {
	case postgres:
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name"
	default:
		query = "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name"
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names = []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TableExists reports whether a user table called name exists.
func TableExists(ctx context.Context, c Conn, name string) (exists bool, err error) {
	var query string
	defer func() { err = fail(ctx, "table exists", c, query, err) }()

	db, d, err := open(ctx, c)
	if err != nil {
		return false, err
	}
	defer db.Close()

	switch d {
	case postgres:
		query = "SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)"
	default:
		query = "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)"
	}

	v, err := scalar(ctx, db, query, name)
	if err != nil {
		return false, err
	}
	b, _ := v.Bool()
	return b, nil
}

// RowCount counts the rows of a table, or of a query when tableOrQuery starts
// with SELECT.
func RowCount(ctx context.Context, c Conn, tableOrQuery string) (n int64, err error) {
	query := countQuery(tableOrQuery)
	defer func() { err = fail(ctx, "row count", c, query, err) }()

	db, _, err := open(ctx, c)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	v, err := scalar(ctx, db, query)
	if err != nil {
		return 0, err
	}
	return countValue(v)
}

func countQuery(tableOrQuery string) string {
	q := strings.TrimRight(strings.TrimSpace(tableOrQuery), "; \t\n")
	if strings.HasPrefix(strings.ToUpper(q), "SELECT") {
		return fmt.Sprintf("SELECT COUNT(1) FROM (%s) AS subquery", q)
	}
	return fmt.Sprintf("SELECT COUNT(1) FROM %s", q)
}

func countValue(v Value) (int64, error) {
	if n, ok := v.Int(); ok {
		return n, nil
	}
	if s, ok := v.Text(); ok {
		// numeric types some drivers report as text
		return strconv.ParseInt(s, 10, 64)
	}
	if f, ok := v.Float(); ok {
		return int64(f), nil
	}
	return 0, fmt.Errorf("unexpected count value of kind %s", v.Kind())
}

func queryRows(ctx context.Context, db *sql.DB, query string, args ...any) ([]Row, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []Row{}
	for rows.Next() {
		vals, err := scanValues(rows, len(cols))
		if err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, name := range cols {
			row[name] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scalar(ctx context.Context, db *sql.DB, query string, args ...any) (Value, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return Value{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Value{}, err
	}
	if !rows.Next() {
		return Value{}, rows.Err()
	}
	vals, err := scanValues(rows, len(cols))
	if err != nil {
		return Value{}, err
	}
	if len(vals) == 0 {
		return Value{}, nil
	}
	return vals[0], nil
}

func scanValues(rows *sql.Rows, n int) ([]Value, error) {
	dest := make([]any, n)
	ptrs := make([]any, n)
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	vals := make([]Value, n)
	for i, d := range dest {
		vals[i] = NewValue(d)
	}
	return vals, nil
}
