// Package logging assembles structured slog loggers for ytranscript.
//
// Standard output belongs to the JSON result record, so every handler built
// here writes to standard error (or a caller-supplied writer in tests). The
// package owns the console and JSON handlers, stamps each record with a
// per-invocation session ID, and exposes context helpers that tag log lines
// with the video being processed. A no-op logger is provided for tests and
// wiring code that cannot fail.
package logging
