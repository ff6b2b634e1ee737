// Package logging builds the logrus logger shared by the engine and the CLI
// and carries it through context.
package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/orgcount/internal/config"
)

type loggerKey struct{}

// New creates a logger writing to w with the configured level and format.
func New(cfg *config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.LogrusLevel())

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
	return logger
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// WithLogger stores entry in ctx.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry)
}

// FromContext returns the entry stored in ctx, or fallback when there is none.
func FromContext(ctx context.Context, fallback *logrus.Entry) *logrus.Entry {
	if ctx == nil {
		return fallback
	}
	switch typed := ctx.Value(loggerKey{}).(type) {
	case *logrus.Entry:
		return typed
	case *logrus.Logger:
		return logrus.NewEntry(typed)
	default:
		return fallback
	}
}
