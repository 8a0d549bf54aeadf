package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/authkit-go/authkit/pkg/cookie"
	"github.com/authkit-go/authkit/pkg/logger"
)

// Manager binds opaque session tokens to user ids. It composes a Store for
// the server-side binding with a cookie.Manager for the browser side; it
// holds no mutable state of its own.
type Manager struct {
	store   Store
	cookies *cookie.Manager
	cfg     Config
	log     *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithCookieName sets the unprefixed session cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.cfg.CookieName = name
	}
}

// WithLogger sets the logger for session lifecycle warnings.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// New creates a session Manager over the given store and cookie manager.
func New(store Store, cookies *cookie.Manager, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if cookies == nil {
		return nil, ErrNoCookieManager
	}

	m := &Manager{
		store:   store,
		cookies: cookies,
		cfg:     DefaultConfig(),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Issue mints a fresh opaque token for userID, persists the binding and
// bakes the session cookie. Called by the login workflow after the user
// store has verified credentials.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session := NewSession(token, userID, m.cfg.TTL)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := m.cookies.Set(w, m.cfg.CookieName, token, m.cfg.TTL); err != nil {
		// Keep the store consistent with what the browser received.
		_ = m.store.Delete(ctx, token)
		return nil, err
	}

	return session, nil
}

// Resolve reads the session cookie and returns the bound session. The
// caller typically follows up with the user store's load-by-id operation.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.cookies.Get(r, m.cfg.CookieName)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Destroy removes the stored session and expires the cookie. Safe to call
// without an active session; logout must always succeed.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := m.cookies.Get(r, m.cfg.CookieName); err == nil && token != "" {
		if err := m.store.Delete(ctx, token); err != nil {
			m.log.WarnContext(ctx, "failed to delete stored session",
				logger.Error(err),
				logger.Component("session"),
			)
		}
	}

	return m.cookies.Delete(w, m.cfg.CookieName)
}

// RevokeUser deletes every session bound to userID across all devices.
func (m *Manager) RevokeUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	return m.store.DeleteByUserID(ctx, userID)
}

// generateToken creates a cryptographically random opaque token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
