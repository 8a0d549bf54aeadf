package digest

import "errors"

var (
	ErrEmptyPassword = errors.New("digest.empty_password")
	ErrHashingFailed = errors.New("digest.hashing_failed")
	ErrMalformedHash = errors.New("digest.malformed_hash")
)
