// Package logger provides structured logging using Zap.
package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Service is attached to every entry so FinanceFlow logs can be told apart
// when several services ship to the same sink.
const Service = "financeflow"

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

type ctxKey struct{}

// New builds a logger for env. "production" uses a JSON encoder, "test"
// discards output, and every other environment gets a console encoder.
// level overrides the environment default when set (debug, info, warn, error).
func New(env, level string) (*zap.Logger, error) {
	if env == "test" {
		return zap.NewNop(), nil
	}

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return base.Named(Service).With(zap.String("service", Service), zap.String("env", env)), nil
}

// Init initializes the global logger. An invalid level falls back to the
// environment default.
func Init(env, level string) {
	once.Do(func() {
		base, err := New(env, level)
		if err != nil {
			base, err = New(env, "")
		}
		if err != nil {
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development", "")
	}
	return sugar
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request-scoped logger stored by WithContext, or the
// global logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && l != nil {
			return l
		}
	}
	return Get()
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
