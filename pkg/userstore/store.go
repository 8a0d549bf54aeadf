package userstore

import (
	"context"
	"database/sql"
)

// Store maps credentials and ids to User entities. Implementations are
// stateless facades over their backing schema; concurrency safety is the
// database driver's concern.
type Store interface {
	// LoadUser verifies username/password and returns the matching user.
	// Unknown usernames and wrong passwords are deliberately
	// indistinguishable: both return ErrInvalidCredentials.
	LoadUser(ctx context.Context, username, password string) (*User, error)

	// LoadUserByID returns the user with the given id, or ErrUserNotFound.
	LoadUserByID(ctx context.Context, id string) (*User, error)

	// StoreUser hashes the password, inserts a new row merged from the
	// credentials and extra values, and returns the stored user.
	StoreUser(ctx context.Context, username, password string, extra map[string]any) (*User, error)
}

// DBTX is the querier the SQL store runs on. Both *sql.DB and *sql.Tx
// satisfy it, so callers can scope the store to a transaction.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
