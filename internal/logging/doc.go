// Package logging assembles structured slog loggers and formatting helpers used
// across swstats.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so command code can tag log
// lines with the run correlation ID. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Logs go to stderr by default so stdout stays reserved for report output.
package logging
