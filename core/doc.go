// Package core defines the fundamental types of the JournalAssistCrew
// orchestration model: the immutable Message, the append-only conversation
// Log, the per-run orchestration State, the Capability interface implemented
// by agents, and the Registry that resolves agent identifiers to
// capabilities. It carries no I/O of its own; the engine package drives
// these types and the server package projects them at the HTTP boundary.
package core
