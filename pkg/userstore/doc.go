// Package userstore persists and loads user records through a configurable
// relational schema and verifies credentials through a pluggable password
// digest.
//
// The Store interface exposes three operations: LoadUser (credential
// check), LoadUserByID and StoreUser. SQLStore is the concrete
// implementation; it runs on any querier satisfying the small DBTX
// interface, so a pgx-backed *sql.DB serves production and sqlmock serves
// tests.
//
// # Schema contract
//
// The backing table needs a primary-key-like id column, a unique username
// column and a password hash column. All identifiers — table name included —
// come from Config and default to users/id/username/password. ExtraColumns
// lists additional application columns to select and return alongside the
// mandatory fields.
//
// Every query includes the id field (and the password field for credential
// checks) even when ExtraColumns omits them, so User.ID is always
// populated. Identifiers are quoted and values are always bound parameters.
//
// # Usage
//
//	store := userstore.NewSQLStore(db, digest.NewBcrypt(),
//	    userstore.WithExtraColumns("email", "age"),
//	)
//
//	user, err := store.StoreUser(ctx, "alice", "s3cret", map[string]any{"age": 34})
//	user, err = store.LoadUser(ctx, "alice", "s3cret")
//	user, err = store.LoadUserByID(ctx, user.ID)
//
// # Error Handling
//
// Empty arguments fail fast with ErrEmpty* sentinels before any I/O.
// Authentication failures return ErrInvalidCredentials with a logged
// warning — unknown user and wrong password are deliberately not told
// apart, which prevents username enumeration. Missing ids return
// ErrUserNotFound. Database failures propagate wrapped but unmodified in
// cause; duplicate usernames additionally match ErrUsernameTaken via
// errors.Is.
package userstore
