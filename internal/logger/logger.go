package logger

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with request context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying tenant/user identity from the context
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if tenantID := contextString(ctx, "tenant_id"); tenantID != "" {
		logger.Entry = logger.Entry.WithField("tenant", tenantID)
	}
	if email := contextString(ctx, "email"); email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else if userID := contextString(ctx, "user_id"); userID != "" {
		logger.Entry = logger.Entry.WithField("user", userID)
	}

	return logger
}

// contextString reads a context value stored as a string or a stringer
// (uuid.UUID values set by the auth middleware).
func contextString(ctx context.Context, key string) string {
	switch v := ctx.Value(key).(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
