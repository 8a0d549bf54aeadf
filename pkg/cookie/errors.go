package cookie

import "errors"

var (
	ErrEmptyName        = errors.New("cookie.empty_name")
	ErrEmptyValue       = errors.New("cookie.empty_value")
	ErrInvalidTTL       = errors.New("cookie.invalid_ttl")
	ErrCookieNotFound   = errors.New("cookie.not_found")
	ErrNoSecret         = errors.New("cookie.no_secret")
	ErrSecretTooShort   = errors.New("cookie.secret_too_short")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
)
