// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger adapts a *zap.Logger to the Logger interface
//
// Key-value pairs are passed to zap's sugared logger, so they end up as
// structured fields.
//
// Example:
//
//	zl, _ := zap.NewProduction()
//	defer zl.Sync()
//	client, _ := nebula.NewClient(apiKey,
//	    nebula.WithLogger(nebula.NewZapLogger(zl.Named("nebula"))))
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger wraps l. A nil logger is replaced with zap.NewNop().
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{logger: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// Debug logs a debug message with structured key-value pairs
func (z *ZapLogger) Debug(_ context.Context, msg string, keysAndValues ...any) {
	z.logger.Debugw(msg, keysAndValues...)
}

// Info logs an informational message with structured key-value pairs
func (z *ZapLogger) Info(_ context.Context, msg string, keysAndValues ...any) {
	z.logger.Infow(msg, keysAndValues...)
}

// Warn logs a warning message with structured key-value pairs
func (z *ZapLogger) Warn(_ context.Context, msg string, keysAndValues ...any) {
	z.logger.Warnw(msg, keysAndValues...)
}

// Error logs an error message with structured key-value pairs
func (z *ZapLogger) Error(_ context.Context, msg string, keysAndValues ...any) {
	z.logger.Errorw(msg, keysAndValues...)
}
