package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey     ctxKey = "runID"
	requestIDKey ctxKey = "requestID"
)

// Init installs the default slog logger according to cfg.
// Every log line carries the service/version/environment base attributes.
func Init(cfg Config) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	handler = handler.WithAttrs(cfg.BaseAttributes())
	slog.SetDefault(slog.New(handler))
}

// GenerateRunID creates a new UUID for tracing one sync run end to end.
func GenerateRunID() string {
	return uuid.NewString()
}

// WithRunID returns a new context containing the sync run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the run ID from the context, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(runIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GenerateRequestID creates a new UUID for tracing one HTTP request.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the HTTP request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger carrying the run_id and request_id attributes
// when present on the context.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := RunIDFromContext(ctx); ok {
		log = log.With(AttrKeyRunID, id)
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(AttrKeyRequestID, id)
	}
	return log
}
