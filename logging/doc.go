// Package logging provides a minimal logging interface and adapters for
// JournalAssistCrew.
//
// The Logger interface defines the structured logging methods (Debug, Info,
// Warn, Error) the engine and HTTP layer use for observability. The package
// includes a slog-backed adapter and a NoOpLogger for silent operation in
// tests and minimal setups. The interface is intentionally tiny so callers
// can plug in any structured logger without vendor lock-in.
package logging
