package core

import "context"

// Capability is the unit of agent behavior the orchestrator dispatches to.
//
// A capability receives the conversation history accumulated so far (a
// snapshot of the log at call time) and returns exactly one reply message.
// It may perform external I/O, such as calling a language model, but it
// must not touch orchestration state: it never sees the pending queue and
// the history slice it receives is a copy.
//
// Implementations must respect context cancellation on any blocking work.
type Capability interface {
	// ID returns the identifier callers use to request this agent.
	ID() string

	// Description returns a short human-readable summary for discovery.
	Description() string

	// Respond produces the agent's single reply to the conversation so far.
	Respond(ctx context.Context, history []Message) (Message, error)
}

// Info carries the identifying details of a registered capability as
// exposed by registry enumeration.
type Info struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
