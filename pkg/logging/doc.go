// Package logging provides structured logging utilities for the inference service
// and its CLI.
//
// # Overview
//
// This package wraps the standard library slog package with service defaults
// so the daemon and the CLI log the same way. It supports environment-based
// log level configuration, module/version context injection, and source
// location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("inferd", "v1.0.0")
//	    slog.Info("processing request", "id", "req-123")
//	}
//
// Setting an explicit log level (flags take precedence over LOG_LEVEL):
//
//	logging.SetDefaultStructuredLoggerWithLevel("infer", "v1.0.0", "warn")
//
// Bridging to the standard library logger, e.g. for http.Server.ErrorLog:
//
//	stdLogger := logging.NewLogLogger(slog.LevelWarn, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug inferd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "inferd",
//	    "version": "v1.0.0",
//	    "port": 8000
//	}
package logging
