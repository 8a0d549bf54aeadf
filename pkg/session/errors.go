package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session.not_found")
	ErrSessionExpired  = errors.New("session.expired")
	ErrInvalidSession  = errors.New("session.invalid")
	ErrEmptyUserID     = errors.New("session.empty_user_id")
	ErrTokenGeneration = errors.New("session.token_generation_failed")
	ErrEncodingFailed  = errors.New("session.encoding_failed")
	ErrNoStore         = errors.New("session.no_store")
	ErrNoCookieManager = errors.New("session.no_cookie_manager")
)
