// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx is the main extension over plain slog: it returns a logger with the
// request ID already attached, so every log line from a handler is
// automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", order.ID)
//	// → time=... level=INFO msg="order created" request_id=a1b2c3d4 order_id=...
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/cropconnect/api/config"
)

var L *slog.Logger

func init() {
	Setup()
}

// Setup (re)builds the base logger from config. Text output in development,
// JSON in production, with an optional MongoDB sink when LOG_MONGO_URI is
// set. Called automatically at init; call again after changing env vars in
// tests.
func Setup() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	if uri := config.LogMongoURI(); uri != "" {
		mh, err := NewMongoHandler(uri, config.LogMongoDatabase(), config.LogMongoCollection())
		if err != nil {
			slog.Warn("logger: mongo sink disabled", "error", err)
		} else {
			handler = NewMultiHandler(handler, mh)
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key under which a per-request logger is stored.
type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger injected by the logging
// middleware, or the base logger if none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a pre-tagged *slog.Logger into ctx. Called by the logging
// middleware; application code rarely needs it.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
