package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const (
	requestIDKey        ctxKey = "request_id"
	accountIDKey        ctxKey = "account_id"
	tenantBusinessIDKey ctxKey = "tenant_business_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the process-wide logrus logger
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithRequestID stores the request id in ctx for later log enrichment
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithActor stores the authenticated account and tenant business ids in ctx
func WithActor(ctx context.Context, accountID, tenantBusinessID string) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	return context.WithValue(ctx, tenantBusinessIDKey, tenantBusinessID)
}

// RequestIDFrom returns the request id stored in ctx, if any
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithContext creates a logger carrying the request and actor fields found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	fields := logrus.Fields{}
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		fields["request_id"] = id
	}
	if id, ok := ctx.Value(accountIDKey).(string); ok && id != "" {
		fields["account_id"] = id
	}
	if id, ok := ctx.Value(tenantBusinessIDKey).(string); ok && id != "" {
		fields["tenant_business_id"] = id
	}
	if len(fields) > 0 {
		logger.Entry = logger.Entry.WithFields(fields)
	}

	return logger
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

// WithError attaches err under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
