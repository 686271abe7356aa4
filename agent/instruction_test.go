package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akesh-M/JournalAssistCrew/core"
)

func TestInstruction_Static(t *testing.T) {
	instr := NewInstructionFromText("You are helpful.")

	assert.True(t, instr.IsStatic())

	text, err := instr.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "You are helpful.", text)
}

func TestInstruction_FromFunc(t *testing.T) {
	instr := NewInstructionFromFunc(func(history []core.Message) (string, error) {
		if len(history) == 0 {
			return "fresh conversation", nil
		}
		return "continued: " + history[len(history)-1].Content, nil
	})

	assert.False(t, instr.IsStatic())

	text, err := instr.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh conversation", text)

	text, err = instr.Resolve([]core.Message{core.NewUserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "continued: hi", text)
}

type staticProvider struct{ text string }

func (p staticProvider) Instruction(_ []core.Message) (string, error) { return p.text, nil }

func TestInstruction_FromProvider(t *testing.T) {
	instr := NewInstructionFromProvider(staticProvider{text: "from provider"})

	assert.False(t, instr.IsStatic())

	text, err := instr.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "from provider", text)
}

func TestInstruction_ProviderError(t *testing.T) {
	cause := errors.New("template broken")
	instr := NewInstructionFromFunc(func(_ []core.Message) (string, error) {
		return "", cause
	})

	_, err := instr.Resolve(nil)
	assert.ErrorIs(t, err, cause)
}
