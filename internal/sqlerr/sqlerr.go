// Package sqlerr classifies low-level database errors.
//
// It converts pgx/pgconn errors (constraint violations, missing rows,
// connection failures) into application-level errors so handlers and
// the global error handler can answer clients without inspecting
// driver internals.
package sqlerr
