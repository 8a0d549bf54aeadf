package cookie

import (
	"net/http"
	"strings"
)

// Config holds cookie manager configuration loadable from the environment.
type Config struct {
	Prefix   string        `env:"COOKIE_PREFIX" envDefault:"web_authenticate_"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HTTPOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`    // comma-separated, newest first
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Prefix:   DefaultPrefix,
		Path:     "/",
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// parseSecrets splits the comma-separated secrets string.
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from the provided Config. Additional
// options are applied after the config-derived ones.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 7)

	if cfg.Prefix != "" {
		configOpts = append(configOpts, WithPrefix(cfg.Prefix))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	if cfg.HTTPOnly {
		configOpts = append(configOpts, WithHTTPOnly(true))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}
	if secrets := cfg.parseSecrets(); len(secrets) > 0 {
		configOpts = append(configOpts, WithSecrets(secrets...))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
