package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akesh-M/JournalAssistCrew/core"
	"github.com/Akesh-M/JournalAssistCrew/model"
)

func TestModelCapability_Respond(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")
	llm.AddResponse("Hello", "Hi there!")

	cap := NewModelCapability("helper", llm)

	history := []core.Message{core.NewUserMessage("Hello")}
	reply, err := cap.Respond(context.Background(), history)
	require.NoError(t, err)

	assert.Equal(t, core.RoleAssistant, reply.Role)
	assert.Equal(t, "helper", reply.Producer)
	assert.Equal(t, "Hi there!", reply.Content)
}

func TestModelCapability_Defaults(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")
	cap := NewModelCapability("helper", llm)

	assert.Equal(t, "helper", cap.ID())
	assert.Equal(t, "Agent helper", cap.Description())

	_, err := cap.Respond(context.Background(), []core.Message{core.NewUserMessage("hi")})
	require.NoError(t, err)

	calls := llm.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "You are helper, a helpful AI assistant.", calls[0].Instructions)
}

func TestModelCapability_ForwardsFullHistory(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")
	cap := NewModelCapability("helper", llm)

	history := []core.Message{
		core.NewUserMessage("Day one entry"),
		core.NewAgentMessage("summarize", "A short summary."),
	}

	_, err := cap.Respond(context.Background(), history)
	require.NoError(t, err)

	calls := llm.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, history, calls[0].Messages)
}

func TestModelCapability_ModelError(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")
	cause := errors.New("rate limited")
	llm.FailWith(cause)

	cap := NewModelCapability("helper", llm)

	_, err := cap.Respond(context.Background(), []core.Message{core.NewUserMessage("hi")})
	assert.ErrorIs(t, err, cause)
}

func TestNewProgressCapability(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")
	cap := NewProgressCapability(llm)

	assert.Equal(t, "progress", cap.ID())
	assert.Equal(t, "Analyzes progress and suggests next steps", cap.Description())

	_, err := cap.Respond(context.Background(), []core.Message{core.NewUserMessage("Finished chapter 3")})
	require.NoError(t, err)

	calls := llm.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Instructions, "You are a Progress Agent")
	assert.Contains(t, calls[0].Instructions, "actionable next steps")
}

func TestNewSummarizeCapability(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")
	cap := NewSummarizeCapability(llm)

	assert.Equal(t, "summarize", cap.ID())
	assert.Equal(t, "Summarizes your text concisely", cap.Description())

	_, err := cap.Respond(context.Background(), []core.Message{core.NewUserMessage("Long journal text")})
	require.NoError(t, err)

	calls := llm.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Instructions, "You are a Summarize Agent")
}
