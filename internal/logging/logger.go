package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger  *zap.Logger
	rotator *lumberjack.Logger
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, console logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "BITREAD_LOG_LEVEL"

// Options configures the logger.
type Options struct {
	// Level is the minimum level. Empty falls back to BITREAD_LOG_LEVEL.
	Level string

	// File enables a JSON log file rotated by lumberjack
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Console receives human-readable output when a level is set.
	// Defaults to stderr so decoded output on stdout stays clean.
	Console io.Writer
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger from opts without touching the global logger.
// With no level and no file it returns a no-op logger. The returned
// closer releases the log file, if any.
func New(opts Options) (*zap.Logger, io.Closer) {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" && opts.File == "" {
		return zap.NewNop(), nopCloser{}
	}

	zapLevel := ParseLevel(level)
	var cores []zapcore.Core

	if level != "" {
		console := opts.Console
		if console == nil {
			console = os.Stderr
		}
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.EncodeCaller = zapcore.ShortCallerEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(zapcore.AddSync(console)),
			zapLevel,
		))
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		closer = lj

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(lj),
			zapLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), closer
}

// Initialize replaces the global logger.
// If opts.Level is empty, it checks the BITREAD_LOG_LEVEL environment variable.
// If neither a level nor a log file is set, logging is disabled (silent mode).
func Initialize(opts Options) {
	Sync()
	var closer io.Closer
	logger, closer = New(opts)
	rotator, _ = closer.(*lumberjack.Logger)
}

// InitializeFromEnv initializes the logger from the BITREAD_LOG_LEVEL
// environment variable only.
func InitializeFromEnv() {
	Initialize(Options{})
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Sync flushes any buffered log entries and closes the log file
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
