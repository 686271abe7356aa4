package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	st := NewState("Hello", []string{"summarize", "progress"})

	require.Equal(t, 1, st.Log.Len())
	seed, _ := st.Log.Last()
	assert.Equal(t, RoleUser, seed.Role)
	assert.Equal(t, "Hello", seed.Content)

	assert.Equal(t, []string{"summarize", "progress"}, st.Pending)
	assert.Empty(t, st.LastProducer)
}

func TestNewState_CopiesSequence(t *testing.T) {
	sequence := []string{"summarize", "progress"}
	st := NewState("Hello", sequence)

	sequence[0] = "tampered"

	assert.Equal(t, "summarize", st.Pending[0])
}

func TestState_Output(t *testing.T) {
	st := NewState("Hello", []string{"progress"})
	assert.Equal(t, "Hello", st.Output())

	st.Log.Append(NewAgentMessage("progress", "Keep going."))
	assert.Equal(t, "Keep going.", st.Output())
}
