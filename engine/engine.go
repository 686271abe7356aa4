package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Akesh-M/JournalAssistCrew/core"
	"github.com/Akesh-M/JournalAssistCrew/logging"
)

// Phase labels the two states of the driver loop.
type Phase int

const (
	// PhaseRunning means pending identifiers remain to be executed.
	PhaseRunning Phase = iota
	// PhaseDone is terminal; the final state is ready for projection.
	PhaseDone
)

// Boundary validation errors returned before any orchestration state is
// created.
var (
	// ErrEmptyInput rejects a run with a blank user message.
	ErrEmptyInput = errors.New("input must be non-empty")
	// ErrEmptySequence rejects a run with no agents to execute.
	ErrEmptySequence = errors.New("agent sequence must be non-empty")
)

// Options configures an Engine instance.
type Options struct {
	// Logger receives structured run and step records. Defaults to the
	// no-op logger.
	Logger logging.Logger
}

// Engine executes agent sequences against a registry. It holds no per-run
// state of its own: every invocation owns an independent core.State, so a
// single Engine is safe for concurrent use once registration has finished.
type Engine struct {
	registry *core.Registry
	logger   logging.Logger
}

// New constructs an Engine bound to the given registry.
func New(registry *core.Registry, optFns ...func(o *Options)) *Engine {
	opts := Options{Logger: logging.NoOpLogger{}}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{registry: registry, logger: opts.Logger}
}

// Result is the outcome of a completed run, handed back to the boundary
// layer for projection into a response.
type Result struct {
	// RunID uniquely identifies the invocation, for correlation in logs.
	RunID string
	// State is the final orchestration state: full log, drained queue and
	// last producer.
	State *core.State
}

// Run executes the given agent sequence over one user input and returns the
// final state.
//
// The loop performs exactly len(sequence) steps when every identifier
// resolves: the queue shrinks by one per step, which is the only
// termination condition. Between steps the context is checked so a
// cancelled request stops issuing steps and its partial state is discarded.
// Any step error aborts the run with no partial result.
func (e *Engine) Run(ctx context.Context, input string, sequence []string) (*Result, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}

	runID := uuid.NewString()
	st := core.NewState(input, sequence)

	e.logger.Info("run started", "run_id", runID, "agents", len(sequence))

	for phase := PhaseRunning; phase != PhaseDone; {
		if err := ctx.Err(); err != nil {
			e.logger.Warn("run cancelled", "run_id", runID, "completed_steps", st.Log.Len()-1)
			return nil, err
		}

		if err := e.step(ctx, st); err != nil {
			e.logger.Error("run aborted", "run_id", runID, "error", err)
			return nil, err
		}

		e.logger.Debug("step completed",
			"run_id", runID,
			"agent", st.LastProducer,
			"log_len", st.Log.Len(),
			"pending", len(st.Pending),
		)

		if !shouldContinue(st) {
			phase = PhaseDone
		}
	}

	e.logger.Info("run finished",
		"run_id", runID,
		"messages", st.Log.Len(),
		"last_agent", st.LastProducer,
	)

	return &Result{RunID: runID, State: st}, nil
}

// step executes exactly one pending agent: dequeue the front identifier,
// resolve it, invoke the capability with the current log snapshot, append
// its single reply and record the producer.
//
// Invoking step with an empty queue is a programming error; it fails fast
// with core.ErrEmptyQueue and leaves the state untouched.
func (e *Engine) step(ctx context.Context, st *core.State) error {
	if len(st.Pending) == 0 {
		return core.ErrEmptyQueue
	}

	id := st.Pending[0]
	st.Pending = st.Pending[1:]

	capability, err := e.registry.Resolve(id)
	if err != nil {
		return err
	}

	reply, err := capability.Respond(ctx, st.Log.Messages())
	if err != nil {
		return &core.CapabilityError{ID: id, Err: err}
	}

	// Stamp the reply's identity so a misbehaving capability cannot
	// impersonate another agent or smuggle in a user-role message.
	reply.Role = core.RoleAssistant
	reply.Producer = id

	st.Log.Append(reply)
	st.LastProducer = id

	return nil
}

// shouldContinue is the continuation policy: keep looping while identifiers
// remain pending. No other condition feeds this decision; failures abort
// the run before the policy is consulted.
func shouldContinue(st *core.State) bool {
	return len(st.Pending) > 0
}
