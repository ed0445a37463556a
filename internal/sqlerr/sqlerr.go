// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes reported by pgx and converts them into
// typed errors (unique or foreign key violations, not-null, ...) and,
// as a last resort, into user-friendly HTTP errors.
package sqlerr
