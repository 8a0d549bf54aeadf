package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/authkit-go/authkit/pkg/cookie"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		opts    []cookie.Option
		wantErr error
	}{
		{
			name: "no options",
		},
		{
			name: "empty secret",
			opts: []cookie.Option{cookie.WithSecrets("")},

			wantErr: cookie.ErrNoSecret,
		},
		{
			name:    "secret too short",
			opts:    []cookie.Option{cookie.WithSecrets("short")},
			wantErr: cookie.ErrSecretTooShort,
		},
		{
			name: "valid secret",
			opts: []cookie.Option{cookie.WithSecrets(testSecret)},
		},
		{
			name: "rotated secrets",
			opts: []cookie.Option{cookie.WithSecrets(testSecret, "this-is-old-very-long-secret-key-32-chars-ok")},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"simple", "session", "opaque-token"},
		{"special chars", "special", "aGVsbG89d29ybGQ"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := &http.Request{Header: http.Header{}}

			if err := m.Set(w, tt.key, tt.value, time.Hour); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

			got, err := m.Get(r, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.value {
				t.Errorf("Get() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestManager_SetValidation(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New()

	tests := []struct {
		name    string
		key     string
		value   string
		ttl     time.Duration
		wantErr error
	}{
		{"empty name", "", "v", time.Hour, cookie.ErrEmptyName},
		{"empty value", "k", "", time.Hour, cookie.ErrEmptyValue},
		{"zero ttl", "k", "v", 0, cookie.ErrInvalidTTL},
		{"negative ttl", "k", "v", -time.Minute, cookie.ErrInvalidTTL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()

			err := m.Set(w, tt.key, tt.value, tt.ttl)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			// Validation must fail before anything touches the response.
			if h := w.Header().Get("Set-Cookie"); h != "" {
				t.Errorf("Set() wrote header %q despite invalid arguments", h)
			}
		})
	}
}

func TestManager_Prefix(t *testing.T) {
	t.Parallel()

	t.Run("default prefix", func(t *testing.T) {
		t.Parallel()
		m, _ := cookie.New()
		w := httptest.NewRecorder()

		if err := m.Set(w, "session", "v", time.Hour); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		h := w.Header().Get("Set-Cookie")
		if !strings.HasPrefix(h, "web_authenticate_session=") {
			t.Errorf("Set-Cookie = %q, want web_authenticate_ prefix", h)
		}
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()
		m, _ := cookie.New(cookie.WithPrefix("myapp_"))
		w := httptest.NewRecorder()

		if err := m.Set(w, "session", "v", time.Hour); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		if h := w.Header().Get("Set-Cookie"); !strings.HasPrefix(h, "myapp_session=") {
			t.Errorf("Set-Cookie = %q, want myapp_ prefix", h)
		}
	})
}

func TestManager_Attributes(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New(
		cookie.WithDomain("example.com"),
		cookie.WithPath("/app"),
		cookie.WithSecure(true),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)

	w := httptest.NewRecorder()
	if err := m.Set(w, "session", "v", 90*time.Second); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	h := w.Header().Get("Set-Cookie")
	for _, want := range []string{"Domain=example.com", "Path=/app", "Secure", "HttpOnly", "SameSite=Strict", "Max-Age=90", "Expires="} {
		if !strings.Contains(h, want) {
			t.Errorf("Set-Cookie = %q, missing %q", h, want)
		}
	}
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New()

	t.Run("expires the cookie", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()

		if err := m.Delete(w, "session"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		res := http.Response{Header: w.Header()}
		cookies := res.Cookies()
		if len(cookies) != 1 {
			t.Fatalf("expected 1 cookie, got %d", len(cookies))
		}

		c := cookies[0]
		if c.Name != "web_authenticate_session" {
			t.Errorf("cookie name = %q", c.Name)
		}
		if c.Value != "" {
			t.Errorf("deleted cookie value = %q, want empty", c.Value)
		}
		if c.MaxAge >= 0 && c.Expires.After(time.Now()) {
			t.Errorf("deleted cookie not expired: MaxAge=%d Expires=%v", c.MaxAge, c.Expires)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()

		if err := m.Delete(w, ""); !errors.Is(err, cookie.ErrEmptyName) {
			t.Errorf("Delete() error = %v, want ErrEmptyName", err)
		}
		if h := w.Header().Get("Set-Cookie"); h != "" {
			t.Errorf("Delete() wrote header %q despite empty name", h)
		}
	})
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New()
	r := &http.Request{Header: http.Header{}}

	if _, err := m.Get(r, "absent"); !errors.Is(err, cookie.ErrCookieNotFound) {
		t.Errorf("Get() error = %v, want ErrCookieNotFound", err)
	}

	if _, err := m.Get(r, ""); !errors.Is(err, cookie.ErrEmptyName) {
		t.Errorf("Get() error = %v, want ErrEmptyName", err)
	}
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()
		m, _ := cookie.New(cookie.WithSecrets(testSecret))
		w := httptest.NewRecorder()
		r := &http.Request{Header: http.Header{}}

		if err := m.SetSigned(w, "session", "user-42", time.Hour); err != nil {
			t.Fatalf("SetSigned() error = %v", err)
		}

		r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

		got, err := m.GetSigned(r, "session")
		if err != nil {
			t.Fatalf("GetSigned() error = %v", err)
		}
		if got != "user-42" {
			t.Errorf("GetSigned() = %q, want user-42", got)
		}
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()
		m, _ := cookie.New(cookie.WithSecrets(testSecret))
		w := httptest.NewRecorder()
		r := &http.Request{Header: http.Header{}}

		if err := m.SetSigned(w, "session", "user-42", time.Hour); err != nil {
			t.Fatalf("SetSigned() error = %v", err)
		}

		tampered := strings.Replace(w.Header().Get("Set-Cookie"), "=d", "=x", 1)
		r.Header.Set("Cookie", tampered)

		if _, err := m.GetSigned(r, "session"); err == nil {
			t.Error("GetSigned() accepted a tampered cookie")
		}
	})

	t.Run("key rotation", func(t *testing.T) {
		t.Parallel()
		oldSecret := "this-is-old-very-long-secret-key-32-chars-ok"

		writer, _ := cookie.New(cookie.WithSecrets(oldSecret))
		w := httptest.NewRecorder()
		if err := writer.SetSigned(w, "session", "user-42", time.Hour); err != nil {
			t.Fatalf("SetSigned() error = %v", err)
		}

		reader, _ := cookie.New(cookie.WithSecrets(testSecret, oldSecret))
		r := &http.Request{Header: http.Header{}}
		r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

		got, err := reader.GetSigned(r, "session")
		if err != nil {
			t.Fatalf("GetSigned() error = %v", err)
		}
		if got != "user-42" {
			t.Errorf("GetSigned() = %q, want user-42", got)
		}
	})

	t.Run("no secrets configured", func(t *testing.T) {
		t.Parallel()
		m, _ := cookie.New()
		w := httptest.NewRecorder()

		if err := m.SetSigned(w, "session", "v", time.Hour); !errors.Is(err, cookie.ErrNoSecret) {
			t.Errorf("SetSigned() error = %v, want ErrNoSecret", err)
		}
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Prefix:   "cfg_",
		Path:     "/",
		Secure:   true,
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secrets:  testSecret + " , ",
	}

	m, err := cookie.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := m.SetSigned(w, "session", "v", time.Hour); err != nil {
		t.Fatalf("SetSigned() error = %v", err)
	}

	h := w.Header().Get("Set-Cookie")
	if !strings.HasPrefix(h, "cfg_session=") {
		t.Errorf("Set-Cookie = %q, want cfg_ prefix", h)
	}
	for _, want := range []string{"Secure", "HttpOnly", "SameSite=Lax"} {
		if !strings.Contains(h, want) {
			t.Errorf("Set-Cookie = %q, missing %q", h, want)
		}
	}
}
