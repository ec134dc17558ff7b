package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface used across the app. Each call attaches
// a single object under key so events stay greppable.
type Logger interface {
	DebugObj(msg, key string, obj any)
	InfoObj(msg, key string, obj any)
	WarnObj(msg, key string, obj any)
	ErrorObj(msg, key string, obj any)
	Sync() error
}

// Options configures the zap backend.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

type zapLogger struct {
	z *zap.Logger
}

// New builds a zap-backed Logger writing to stderr.
func New(opts Options) (Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) Logger {
	if z == nil {
		return NopLogger{}
	}
	return &zapLogger{z: z}
}

func (l *zapLogger) DebugObj(msg, key string, obj any) { l.z.Debug(msg, zap.Any(key, obj)) }
func (l *zapLogger) InfoObj(msg, key string, obj any)  { l.z.Info(msg, zap.Any(key, obj)) }
func (l *zapLogger) WarnObj(msg, key string, obj any)  { l.z.Warn(msg, zap.Any(key, obj)) }
func (l *zapLogger) ErrorObj(msg, key string, obj any) { l.z.Error(msg, zap.Any(key, obj)) }
func (l *zapLogger) Sync() error                       { return l.z.Sync() }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) DebugObj(string, string, any) {}
func (NopLogger) InfoObj(string, string, any)  {}
func (NopLogger) WarnObj(string, string, any)  {}
func (NopLogger) ErrorObj(string, string, any) {}
func (NopLogger) Sync() error                  { return nil }

// Ensure returns log, or a NopLogger when log is nil.
func Ensure(log Logger) Logger {
	if log == nil {
		return NopLogger{}
	}
	return log
}
