// Package server exposes the orchestration engine over HTTP: agent
// discovery, health, and the run endpoint that seeds a conversation from a
// request, drives the agent sequence and projects the final state back as
// JSON. Validation failures are rejected before any orchestration state is
// created; a failed run never returns a partial conversation.
package server
