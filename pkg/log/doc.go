// Package log provides structured event logging for the unit engine.
//
// This package defines the Logger interface and Event types for
// capturing engine operations: resolutions, conversions, arithmetic,
// and runtime registrations. It is separate from operational logging
// (slog) - event capture provides a complete machine-readable trace
// for debugging table data and conversion behavior.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/unitkit/session.ulog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with .ulog extension. The unitkit-tables
// CLI tool can export them to JSON.
package log
