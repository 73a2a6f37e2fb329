// Package dbops runs one-off SQL statements for test setup and verification.
//
// Every function opens its own connection from a Conn descriptor, performs a
// single round trip, and closes the connection on every exit path. There is
// no pooling, retry or transaction handling.
//
// Supported drivers are postgres (through pgx) and sqlite. Results come back
// as Rows of Values, a tagged union over the SQL types a driver can return.
//
// Failures are *Error values matching ErrDatabase; they are logged as
// db_op_failed through the logger carried by the context before being
// returned.
package dbops
