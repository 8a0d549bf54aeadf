// Package logger builds the slog loggers used across the subsystem: a
// small factory over the standard text/json handlers plus attribute
// helpers (Component, UserID, Error) that keep field names consistent
// between packages.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "auth")),
//	)
//
// Components accept a *slog.Logger option and default to logger.Discard(),
// so logging is opt-in and tests stay quiet.
package logger
