package cookie

import "net/http"

// Options is the immutable attribute set shared by every cookie a Manager
// issues. Unset attributes are omitted from the Set-Cookie header.
type Options struct {
	Prefix   string
	Domain   string
	Path     string
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
	Secrets  []string
}

// Option configures a Manager at construction time.
type Option func(*Options)

// WithPrefix overrides the cookie name namespace.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HTTPOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// WithSecrets sets the signing secrets. The first is used for writing, the
// rest remain valid for reading to support key rotation.
func WithSecrets(secrets ...string) Option {
	return func(o *Options) {
		o.Secrets = secrets
	}
}

func defaultOptions() Options {
	return Options{
		Prefix: DefaultPrefix,
	}
}

// applyOptions copies base and applies the option functions; the base is
// never modified.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
