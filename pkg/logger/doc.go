// Package logger builds *slog.Logger instances with functional options and a
// handler decorator that copies request-scoped values from context.Context
// into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, attaches static attributes, and wraps the result in
// LogHandlerDecorator, which runs the registered ContextExtractor callbacks
// before delegating.
//
// Attribute helpers in attr.go (Error, Component, Event, Field, ...) keep key
// names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "regform"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.ErrorContext(ctx, "country catalog fetch failed",
//	    logger.Component("countries"),
//	    logger.Error(err),
//	)
package logger
