// Package logging wraps zap's sugared logger with the key/value helpers used
// across lexiset.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper for zap.SugaredLogger.
type Logger struct {
	zLogger *zap.SugaredLogger
}

// A LoggerConfig contains the running environment
// which is either "development" or "production",
// the path of file to write the logging output to,
// and an option to explicitly enable stracktrace output.
type LoggerConfig struct {
	EnableStacktrace bool   `toml:"enable_stacktrace,omitempty"`
	Environment      string `toml:"env"`
	Path             string `toml:"path,omitempty"`
}

// NewLogger builds a Logger from conf. Development writes DebugLevel and
// above, production InfoLevel and above, to stderr and the file in conf.
func NewLogger(conf *LoggerConfig) (*Logger, error) {
	zLevel := zap.NewAtomicLevel()
	switch {
	case strings.EqualFold("development", conf.Environment):
		zLevel.SetLevel(zap.DebugLevel)
	case strings.EqualFold("production", conf.Environment):
		zLevel.SetLevel(zap.InfoLevel)
	default:
		return nil, fmt.Errorf("lexiset: logger environment must be either development or production, got %q", conf.Environment)
	}

	zOutputPaths := []string{"stderr"}
	if conf.Path != "" {
		zOutputPaths = append(zOutputPaths, conf.Path)
	}

	zConfig := &zap.Config{
		Level:             zLevel,
		Development:       false,
		Encoding:          "console",
		DisableStacktrace: !conf.EnableStacktrace,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "path",
			MessageKey:     "msg",
			StacktraceKey:  "stack",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths: zOutputPaths,
	}

	logger, err := zConfig.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{logger.Sugar()}, nil
}

// FromZap wraps an existing zap logger.
func FromZap(logger *zap.Logger) *Logger {
	return &Logger{logger.Sugar()}
}

// Nop returns a Logger that discards everything. Library types start with it.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// Named returns a child logger with name appended to the logger's name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l.zLogger.Named(name)}
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{l.zLogger.With(keysAndValues...)}
}

// Debug logs a message that is most useful to debug,
// with some additional context addressed by key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zLogger.Debugw(msg, keysAndValues...)
}

// Info logs a message that highlights progress,
// with some additional context addressed by key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.zLogger.Infow(msg, keysAndValues...)
}

// Warn logs a message that indicates potentially harmful situations,
// with some additional context addressed by key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.zLogger.Warnw(msg, keysAndValues...)
}

// Error logs a message that is fatal to the operation but not the process,
// with some additional context addressed by key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.zLogger.Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zLogger.Sync()
}
