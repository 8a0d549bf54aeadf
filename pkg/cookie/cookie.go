package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultPrefix namespaces every cookie issued by a Manager so the
	// subsystem never collides with other cookies on the same domain.
	DefaultPrefix = "web_authenticate_"

	minSecretLength = 32

	// deleteOffset is the negative expiry baked into deleted cookies. Far
	// enough in the past that clock skew cannot resurrect the cookie.
	deleteOffset = -365 * 24 * time.Hour
)

// Manager issues, reads and deletes namespaced browser cookies. It is
// immutable after construction and safe for concurrent use; every cookie it
// bakes carries the same prefix and attribute set.
type Manager struct {
	opts Options
}

// New creates a cookie Manager. Secrets are only required for the signed
// variants; when provided, each must be at least 32 bytes.
func New(opts ...Option) (*Manager, error) {
	options := applyOptions(defaultOptions(), opts)

	for i, s := range options.Secrets {
		if s == "" {
			return nil, ErrNoSecret
		}
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	return &Manager{opts: options}, nil
}

// Set emits a Set-Cookie header for the cookie named prefix+name, expiring
// ttl from now. Both Expires and Max-Age are set so old and new user agents
// agree on the lifetime.
func (m *Manager) Set(w http.ResponseWriter, name, value string, ttl time.Duration) error {
	if name == "" {
		return ErrEmptyName
	}
	if value == "" {
		return ErrEmptyValue
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	m.bake(w, name, value, ttl)
	return nil
}

// Get reads the inbound request's cookie named prefix+name. Returns
// ErrCookieNotFound if the browser sent no such cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	c, err := r.Cookie(m.opts.Prefix + name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete instructs the browser to drop the cookie named prefix+name. It is
// the same baking routine as Set with an empty value and a large negative
// offset, so the browser treats the cookie as already expired.
func (m *Manager) Delete(w http.ResponseWriter, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	m.bake(w, name, "", deleteOffset)
	return nil
}

// SetSigned stores value with an HMAC-SHA256 signature appended, making the
// cookie tamper-evident. Requires at least one secret.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, ttl time.Duration) error {
	if len(m.opts.Secrets) == 0 {
		return ErrNoSecret
	}
	if value == "" {
		return ErrEmptyValue
	}
	return m.Set(w, name, m.sign(value), ttl)
}

// GetSigned reads a cookie written by SetSigned and verifies its signature.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if len(m.opts.Secrets) == 0 {
		return "", ErrNoSecret
	}

	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

// bake is the single write path for both creation and deletion, keyed only
// by the sign of the offset.
func (m *Manager) bake(w http.ResponseWriter, name, value string, offset time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.Prefix + name,
		Value:    value,
		Expires:  time.Now().Add(offset),
		MaxAge:   maxAge(offset),
		Domain:   m.opts.Domain,
		Path:     m.opts.Path,
		Secure:   m.opts.Secure,
		HttpOnly: m.opts.HTTPOnly,
		SameSite: m.opts.SameSite,
	})
}

// maxAge converts a signed offset to the Max-Age attribute value. net/http
// emits Max-Age=0 for any negative value, which removes the cookie.
func maxAge(offset time.Duration) int {
	secs := int(offset / time.Second)
	if secs == 0 && offset < 0 {
		return -1
	}
	return secs
}

func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(m.opts.Secrets[0]))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

func (m *Manager) verify(signed string) (string, error) {
	parts := strings.SplitN(signed, "|", 2)
	if len(parts) != 2 {
		return "", ErrInvalidFormat
	}

	encodedValue, signature := parts[0], parts[1]

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Try all secrets so old cookies stay valid while keys rotate.
	for _, secret := range m.opts.Secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expectedSig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(signature), []byte(expectedSig)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}
