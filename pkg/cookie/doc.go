// Package cookie manages the browser cookies of the authentication
// subsystem. A Manager bakes every cookie under a configured name prefix
// (default "web_authenticate_") with one shared, immutable attribute set,
// so the subsystem's cookies never collide with the rest of the
// application's and always carry consistent security attributes.
//
// # Overview
//
//   - Set(), Get(), Delete() – plain namespaced cookies
//   - SetSigned(), GetSigned() – HMAC-SHA256 signed values with key rotation
//
// Creation and deletion share a single baking routine: Delete is Set with an
// empty value and a large negative expiry offset, which makes the browser
// treat the cookie as already expired and remove it. Set writes both Expires
// and Max-Age so old and new user agents agree on the lifetime.
//
// # Usage
//
//	man, err := cookie.New(
//	    cookie.WithPath("/"),
//	    cookie.WithHTTPOnly(true),
//	    cookie.WithSameSite(http.SameSiteLaxMode),
//	)
//	if err != nil { log.Fatal(err) }
//
//	// login: carry the opaque session identifier for an hour
//	_ = man.Set(w, "session", sessionID, time.Hour)
//
//	// each request
//	id, err := man.Get(r, "session")
//
//	// logout
//	_ = man.Delete(w, "session")
//
// # Configuration
//
// The Config struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env:
//
//	cfg := cookie.DefaultConfig()
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Empty names and values and non-positive lifetimes fail fast with
// package-level sentinel errors (ErrEmptyName, ErrEmptyValue, ErrInvalidTTL)
// before anything is written to the response. A missing inbound cookie is
// reported as ErrCookieNotFound so callers can use errors.Is.
package cookie
