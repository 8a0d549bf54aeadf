package userstore

import "errors"

var (
	ErrEmptyUsername = errors.New("userstore.empty_username")
	ErrEmptyPassword = errors.New("userstore.empty_password")
	ErrEmptyUserID   = errors.New("userstore.empty_user_id")

	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	// alike; the two causes are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("userstore.invalid_credentials")

	ErrUserNotFound  = errors.New("userstore.user_not_found")
	ErrUsernameTaken = errors.New("userstore.username_taken")
)
