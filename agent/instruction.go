package agent

import "github.com/Akesh-M/JournalAssistCrew/core"

// Provider supplies dynamic instruction text at runtime. Implementations
// can derive instructions from the conversation observed so far.
type Provider interface {
	Instruction(history []core.Message) (string, error)
}

// Func is a functional adapter allowing ordinary functions to be used as
// Providers.
type Func func(history []core.Message) (string, error)

// Instruction implements Provider.
func (f Func) Instruction(history []core.Message) (string, error) { return f(history) }

// Instruction represents either a static instruction string or a dynamic
// provider. This mirrors a union of string | provider in a Go-idiomatic
// way.
type Instruction struct {
	text     string
	provider Provider
}

// NewInstructionFromText creates an Instruction from a static string.
func NewInstructionFromText(text string) Instruction { return Instruction{text: text} }

// NewInstructionFromProvider creates an Instruction from a dynamic provider.
func NewInstructionFromProvider(p Provider) Instruction { return Instruction{provider: p} }

// NewInstructionFromFunc creates an Instruction from a function.
func NewInstructionFromFunc(f func(history []core.Message) (string, error)) Instruction {
	return Instruction{provider: Func(f)}
}

// IsStatic returns true if the instruction is backed by a static string.
func (i Instruction) IsStatic() bool { return i.provider == nil }

// Resolve returns the instruction text, invoking the provider if needed.
func (i Instruction) Resolve(history []core.Message) (string, error) {
	if i.provider != nil {
		return i.provider.Instruction(history)
	}
	return i.text, nil
}
