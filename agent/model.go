package agent

import (
	"context"
	"fmt"

	"github.com/Akesh-M/JournalAssistCrew/core"
	"github.com/Akesh-M/JournalAssistCrew/model"
)

// ModelCapabilityOptions configures a ModelCapability instance.
type ModelCapabilityOptions struct {
	// Description is the human-readable summary shown by discovery.
	Description string
	// Instruction is the system prompt sent ahead of the conversation.
	Instruction Instruction
}

// ModelCapability is a core.Capability backed by a language model. Each
// Respond call resolves the agent's instruction, sends it together with the
// full conversation history and returns the model's reply attributed to
// this agent. It holds no mutable state and is safe for concurrent runs.
type ModelCapability struct {
	id          string
	description string
	instruction Instruction
	llm         model.Model
}

// NewModelCapability creates a model-backed capability with sensible
// defaults: a generic assistant instruction derived from the identifier and
// a placeholder description.
func NewModelCapability(id string, llm model.Model, optFns ...func(o *ModelCapabilityOptions)) *ModelCapability {
	opts := ModelCapabilityOptions{
		Description: fmt.Sprintf("Agent %s", id),
		Instruction: NewInstructionFromText(fmt.Sprintf("You are %s, a helpful AI assistant.", id)),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ModelCapability{
		id:          id,
		description: opts.Description,
		instruction: opts.Instruction,
		llm:         llm,
	}
}

// ID implements core.Capability.
func (a *ModelCapability) ID() string { return a.id }

// Description implements core.Capability.
func (a *ModelCapability) Description() string { return a.description }

// Respond implements core.Capability. The history snapshot is forwarded
// untouched so the model sees the user input and every earlier agent reply
// in order.
func (a *ModelCapability) Respond(ctx context.Context, history []core.Message) (core.Message, error) {
	instructions, err := a.instruction.Resolve(history)
	if err != nil {
		return core.Message{}, fmt.Errorf("resolve instruction: %w", err)
	}

	resp, err := a.llm.Generate(ctx, model.Request{
		Instructions: instructions,
		Messages:     history,
	})
	if err != nil {
		return core.Message{}, err
	}

	return core.NewAgentMessage(a.id, resp.Content), nil
}
