package session

import (
	"time"

	"github.com/google/uuid"
)

// Session binds an opaque browser token to a user id for a bounded
// lifetime. The token is the only value that ever reaches the client; the
// user id stays server-side.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession creates a session expiring ttl from now.
func NewSession(token, userID string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// TTL returns the remaining lifetime, zero if already expired.
func (s *Session) TTL() time.Duration {
	if s == nil {
		return 0
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl < 0 {
		return 0
	}
	return ttl
}
