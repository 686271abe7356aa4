package core

// State is the mutable record threaded through a single invocation: the
// conversation log, the queue of agent identifiers not yet run, and the
// identifier of the last agent that replied.
//
// A State is created once per invocation from the caller's request, mutated
// only by the engine's step function, and discarded when the run ends. It
// is never shared across invocations and is not persisted.
type State struct {
	// Log is the append-only conversation history, seeded with the user
	// message.
	Log *Log

	// Pending holds the agent identifiers not yet executed, consumed
	// strictly from the front. Duplicates are legal and run once each; the
	// orchestrator never deduplicates.
	Pending []string

	// LastProducer is the identifier of the agent that appended the most
	// recent reply, empty before the first step.
	LastProducer string
}

// NewState seeds orchestration state for one run: the log starts with the
// user's input and the pending queue holds the requested identifiers in
// caller-given order. The sequence is copied so later mutation of the
// caller's slice cannot reach the run.
func NewState(input string, sequence []string) *State {
	pending := make([]string, len(sequence))
	copy(pending, sequence)
	return &State{
		Log:     NewLog(NewUserMessage(input)),
		Pending: pending,
	}
}

// Output returns the content of the last message in the log, the
// backward-compatible single-string result of a run.
func (s *State) Output() string {
	last, ok := s.Log.Last()
	if !ok {
		return ""
	}
	return last.Content
}
