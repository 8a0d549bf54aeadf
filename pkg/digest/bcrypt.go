package digest

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt is the default Digest implementation. The zero value uses
// bcrypt.DefaultCost; use NewBcrypt with options to tune it.
type Bcrypt struct {
	cost int
}

// BcryptOption configures a Bcrypt digest.
type BcryptOption func(*Bcrypt)

// WithCost sets the bcrypt cost factor. Values outside the range supported
// by the bcrypt package are rejected at Generate time by the library itself.
func WithCost(cost int) BcryptOption {
	return func(b *Bcrypt) {
		b.cost = cost
	}
}

// NewBcrypt creates a bcrypt-backed Digest.
func NewBcrypt(opts ...BcryptOption) *Bcrypt {
	b := &Bcrypt{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Generate hashes password with a per-password random salt.
func (b *Bcrypt) Generate(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	cost := b.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hash), nil
}

// Validate reports whether candidate matches the stored hash. Malformed
// hashes and mismatches both report false.
func (b *Bcrypt) Validate(hash, candidate string) bool {
	if hash == "" || candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
