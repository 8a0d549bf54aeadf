package userstore

// Config names the backing schema. Every identifier is independently
// overridable so the store adapts to an existing users table instead of
// dictating one.
type Config struct {
	UsersTable    string   `env:"USERSTORE_TABLE" envDefault:"users"`
	IDField       string   `env:"USERSTORE_ID_FIELD" envDefault:"id"`
	UsernameField string   `env:"USERSTORE_USERNAME_FIELD" envDefault:"username"`
	PasswordField string   `env:"USERSTORE_PASSWORD_FIELD" envDefault:"password"`
	ExtraColumns  []string `env:"USERSTORE_EXTRA_COLUMNS" envSeparator:","`
}

// DefaultConfig returns the schema naming used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		UsersTable:    "users",
		IDField:       "id",
		UsernameField: "username",
		PasswordField: "password",
	}
}

// normalize falls back to defaults for any identifier left empty.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.UsersTable == "" {
		c.UsersTable = def.UsersTable
	}
	if c.IDField == "" {
		c.IDField = def.IDField
	}
	if c.UsernameField == "" {
		c.UsernameField = def.UsernameField
	}
	if c.PasswordField == "" {
		c.PasswordField = def.PasswordField
	}
	return c
}
