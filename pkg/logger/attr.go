package logger

import "log/slog"

// Component tags a record with the emitting subsystem component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// UserID tags a record with the acting user's id.
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Error renders a non-nil error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}
