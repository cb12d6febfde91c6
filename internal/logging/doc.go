// Package logging provides structured logging for bitread.
//
// This package wraps a zap logger. Logging is silent unless a level is set
// with --log-level or the BITREAD_LOG_LEVEL environment variable, so the
// decoder's own output is never mixed with diagnostics.
//
// # Log Levels
//
//   - Debug: per-stage and per-row detail (row boundaries, packet headers)
//   - Info: stage results (part name, payload size, frame and bit counts)
//   - Warn: recoverable issues (sample count clamped)
//   - Error: fatal pipeline failures
//
// # Outputs
//
// Console output goes to stderr in zap's console format. A log file can be
// added with --log-file or logging.file in the configuration; it receives
// JSON lines and is rotated by lumberjack according to the max_size_mb,
// max_backups and max_age_days settings. Setting only a file logs at info.
//
// # Configuration
//
//	logging.Initialize(logging.Options{Level: "debug", File: "bitread.log"})
//	defer logging.Sync()
//
//	logging.Info("frame data decoded", zap.Int("bits", n))
//
// Library packages do not use the global logger. They take a *zap.Logger
// through an option, and commands pass logging.GetLogger().
package logging
