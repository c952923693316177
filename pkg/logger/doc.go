// Package logger wraps log/slog with functional options and a small set of
// attribute constructors so that validation records share key names.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, applies static attributes and returns a *slog.Logger. Environment
// presets (WithDevelopment, WithStaging, WithProduction, WithEnvironment) set
// the level and format in one call.
//
// Attribute helpers in attr.go (Component, Operation, Kind, Args, File,
// Document, Error, Errors) keep keys consistent between the validator and the
// command line tool.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "asserttypes"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("validation failed",
//	    logger.Operation("posInt"),
//	    logger.Error(err),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check. WithFormat panics on an unknown format.
package logger
