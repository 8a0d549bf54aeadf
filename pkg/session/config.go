package session

import "time"

// Config holds session manager configuration.
type Config struct {
	// CookieName is the unprefixed name of the session cookie; the cookie
	// manager's namespace is prepended on the wire.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`

	// TTL is the session lifetime, applied to both the stored session and
	// the cookie expiry.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// CleanupInterval for expired sessions in stores that need sweeping
	// (0 to disable).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:      "session",
		TTL:             24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
	}
}
