// Package log wraps zap with the level, field and default-logger helpers
// used across the game.
package log

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

var (
	String     = zap.String
	Int        = zap.Int
	Uint64     = zap.Uint64
	Float64    = zap.Float64
	Bool       = zap.Bool
	Duration   = zap.Duration
	Stringer   = zap.Stringer
	Any        = zap.Any
	ErrorField = zap.Error

	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
)

// Logger is a named zap logger with its level.
type Logger struct {
	l     *zap.Logger
	level Level
}

// New creates a JSON logger writing to out.
func New(out io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(out), level)
	return &Logger{l: zap.New(core, opts...), level: level}
}

// DevLogger creates a human readable console logger writing to out.
func DevLogger(out io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(out), level)
	return &Logger{l: zap.New(core, opts...), level: level}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{l: zap.NewNop(), level: FatalLevel}
}

// WithFilter restricts output with zapfilter rules, e.g. "*:*,-game.race".
func WithFilter(rules string) (Option, error) {
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}), nil
}

// ParseLevel converts a level name such as "debug" or "warn".
func ParseLevel(s string) (Level, error) {
	return zapcore.ParseLevel(s)
}

// Named returns a child logger with the given name segment.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

// With returns a child logger that always adds the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), level: l.level}
}

// Level returns the minimum enabled level.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.l.Sync()
}

var (
	mu  sync.RWMutex
	std = DevLogger(io.Discard, InfoLevel)
)

// Default returns the process-wide logger.
func Default() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// ResetDefault replaces the process-wide logger.
func ResetDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	std = l
}

func Debug(msg string, fields ...Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { Default().Fatal(msg, fields...) }
