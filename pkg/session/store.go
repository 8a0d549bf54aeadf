package session

import "context"

// Store persists the token→session binding. Implementations must be safe
// for concurrent use.
type Store interface {
	// Create stores a new session under its token.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token. Expired sessions are reported as
	// ErrSessionExpired; unknown tokens as ErrSessionNotFound.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete removes a session by token. Deleting an absent token is not
	// an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions.
	DeleteExpired(ctx context.Context) error

	// DeleteByUserID removes every session belonging to a user, revoking
	// all of their devices at once.
	DeleteByUserID(ctx context.Context, userID string) error
}
