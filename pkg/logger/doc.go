// Package logger provides a slog factory with environment-driven
// configuration and domain attribute helpers.
//
//	log := logger.New(
//		logger.WithService("recetkit"),
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("reconciled", logger.UserID(id), logger.Tier("premium"))
//
// Core packages accept a *slog.Logger through options and fall back to
// slog.Default(); they log operational detail only, never user-facing
// messages.
package logger
