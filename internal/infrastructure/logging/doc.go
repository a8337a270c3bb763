// Package logging provides structured logging for buildsim.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the exporters and the CLI.
//
// # Features
//
//   - JSON output for batch/CI runs (machine-parsable)
//   - Text output for interactive use (human-readable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
package logging
