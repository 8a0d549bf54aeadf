package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/authkit-go/authkit/pkg/digest"
	"github.com/authkit-go/authkit/pkg/logger"
	"github.com/authkit-go/authkit/pkg/pg"
)

// SQLStore is the relational Store implementation. It owns no state beyond
// its configuration: every operation is one parameterized round trip on the
// injected querier.
type SQLStore struct {
	db  DBTX
	dig digest.Digest
	cfg Config
	log *slog.Logger
}

// SQLOption configures an SQLStore.
type SQLOption func(*SQLStore)

// WithConfig replaces the whole schema configuration.
func WithConfig(cfg Config) SQLOption {
	return func(s *SQLStore) {
		s.cfg = cfg
	}
}

// WithTable sets the users table name.
func WithTable(table string) SQLOption {
	return func(s *SQLStore) {
		s.cfg.UsersTable = table
	}
}

// WithIDField sets the id column name.
func WithIDField(field string) SQLOption {
	return func(s *SQLStore) {
		s.cfg.IDField = field
	}
}

// WithUsernameField sets the username column name.
func WithUsernameField(field string) SQLOption {
	return func(s *SQLStore) {
		s.cfg.UsernameField = field
	}
}

// WithPasswordField sets the password hash column name.
func WithPasswordField(field string) SQLOption {
	return func(s *SQLStore) {
		s.cfg.PasswordField = field
	}
}

// WithExtraColumns sets the additional columns selected and returned
// alongside the mandatory id field.
func WithExtraColumns(columns ...string) SQLOption {
	return func(s *SQLStore) {
		s.cfg.ExtraColumns = columns
	}
}

// WithLogger sets the logger used for authentication warnings.
func WithLogger(log *slog.Logger) SQLOption {
	return func(s *SQLStore) {
		s.log = log
	}
}

// NewSQLStore creates a Store over the given querier and digest.
func NewSQLStore(db DBTX, dig digest.Digest, opts ...SQLOption) *SQLStore {
	s := &SQLStore{
		db:  db,
		dig: dig,
		cfg: DefaultConfig(),
		log: logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}
	s.cfg = s.cfg.normalize()

	return s
}

// LoadUser fetches the row matching username and verifies the password
// against the stored hash. Unknown user, empty stored hash and digest
// mismatch all log a warning and return ErrInvalidCredentials so callers
// cannot enumerate usernames.
func (s *SQLStore) LoadUser(ctx context.Context, username, password string) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	cols := s.selectColumns(true)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		identList(cols), ident(s.cfg.UsersTable), ident(s.cfg.UsernameField))

	values, err := s.scanRow(ctx, len(cols), query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.warnAuthFailure(ctx, username, "unknown username")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("userstore: load user: %w", err)
	}

	hash, _ := normalizeValue(values[1]).(string)
	if hash == "" {
		s.warnAuthFailure(ctx, username, "empty stored hash")
		return nil, ErrInvalidCredentials
	}
	if !s.dig.Validate(hash, password) {
		s.warnAuthFailure(ctx, username, "password mismatch")
		return nil, ErrInvalidCredentials
	}

	// The password hash is dropped here; it never reaches the User row.
	return s.buildUser(values[0], cols[2:], values[2:]), nil
}

// LoadUserByID fetches the row keyed by id. The password column is not
// selected; it is not needed outside credential checks.
func (s *SQLStore) LoadUserByID(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrEmptyUserID
	}

	cols := s.selectColumns(false)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		identList(cols), ident(s.cfg.UsersTable), ident(s.cfg.IDField))

	values, err := s.scanRow(ctx, len(cols), query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WarnContext(ctx, "user not found",
				slog.String("user_id", id),
				logger.Component("userstore"),
			)
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("userstore: load user by id: %w", err)
	}

	return s.buildUser(values[0], cols[1:], values[1:]), nil
}

// StoreUser hashes the password, merges username and hash into the extra
// values and inserts them as one row. The insert returns the generated id
// and the configured extra columns in the same statement, so a concurrent
// duplicate insert can never be misattributed the wrong id: it surfaces as
// ErrUsernameTaken from the unique constraint instead.
func (s *SQLStore) StoreUser(ctx context.Context, username, password string, extra map[string]any) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hash, err := s.dig.Generate(password)
	if err != nil {
		return nil, fmt.Errorf("userstore: hash password: %w", err)
	}

	merged := make(map[string]any, len(extra)+2)
	for k, v := range extra {
		merged[k] = v
	}
	merged[s.cfg.UsernameField] = username
	merged[s.cfg.PasswordField] = hash

	// Deterministic column order keeps the statement stable across calls.
	insertCols := make([]string, 0, len(merged))
	for k := range merged {
		insertCols = append(insertCols, k)
	}
	slices.Sort(insertCols)

	args := make([]any, len(insertCols))
	placeholders := make([]string, len(insertCols))
	for i, col := range insertCols {
		args[i] = merged[col]
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	returning := s.selectColumns(false)
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		ident(s.cfg.UsersTable), identList(insertCols),
		strings.Join(placeholders, ", "), identList(returning))

	values, err := s.scanRow(ctx, len(returning), query, args...)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return nil, errors.Join(ErrUsernameTaken, err)
		}
		return nil, fmt.Errorf("userstore: store user: %w", err)
	}

	return s.buildUser(values[0], returning[1:], values[1:]), nil
}

// selectColumns builds the select list: the id field, the password field
// when credentials are being checked, then the configured extra columns.
// Mandatory fields are always present even if ExtraColumns repeats them,
// and the password field never rides along as an extra.
func (s *SQLStore) selectColumns(includePassword bool) []string {
	cols := make([]string, 0, len(s.cfg.ExtraColumns)+2)
	cols = append(cols, s.cfg.IDField)
	if includePassword {
		cols = append(cols, s.cfg.PasswordField)
	}

	for _, c := range s.cfg.ExtraColumns {
		if c == "" || c == s.cfg.IDField || c == s.cfg.PasswordField {
			continue
		}
		if slices.Contains(cols, c) {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

// scanRow runs a single-row query and returns the raw column values.
func (s *SQLStore) scanRow(ctx context.Context, n int, query string, args ...any) ([]any, error) {
	values := make([]any, n)
	dest := make([]any, n)
	for i := range values {
		dest[i] = &values[i]
	}

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		return nil, err
	}
	return values, nil
}

// buildUser assembles the value object from the scanned id and the
// remaining selected columns. With no extra columns configured the row is
// empty and only the id is populated.
func (s *SQLStore) buildUser(id any, cols []string, values []any) *User {
	row := make(map[string]any, len(cols))
	for i, c := range cols {
		row[c] = normalizeValue(values[i])
	}
	return &User{
		ID:  formatID(id),
		Row: row,
	}
}

func (s *SQLStore) warnAuthFailure(ctx context.Context, username, reason string) {
	s.log.WarnContext(ctx, "authentication failed",
		slog.String("username", username),
		slog.String("reason", reason),
		logger.Component("userstore"),
	)
}

// ident quotes a schema identifier so configured names can never break out
// of their position in the statement. Values always travel as bound
// parameters, never interpolated.
func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func identList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = ident(n)
	}
	return strings.Join(quoted, ", ")
}
