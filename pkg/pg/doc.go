// Package pg provides the PostgreSQL plumbing of the subsystem: a pgx
// connection pool with startup retry, a database/sql bridge for the
// components that run on the standard querier interfaces, goose migrations
// and error classifiers for the SQLSTATEs the user store cares about.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
//
//	store := userstore.NewSQLStore(pg.OpenDB(pool), digest.NewBcrypt())
//
// The migrations directory ships a default users table; point
// PG_MIGRATIONS_PATH elsewhere to manage an existing schema.
package pg
