package journalassist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akesh-M/JournalAssistCrew/agent"
	"github.com/Akesh-M/JournalAssistCrew/core"
	"github.com/Akesh-M/JournalAssistCrew/model"
)

func TestCrew_Run(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")
	llm.AddResponse("Wrote 500 words today", "Solid pace. Aim for 600 tomorrow.")

	crew := New()
	crew.RegisterAgent(agent.NewProgressCapability(llm))
	crew.RegisterAgent(agent.NewSummarizeCapability(llm))

	result, err := crew.Run(context.Background(), "Wrote 500 words today", "progress")
	require.NoError(t, err)

	assert.Equal(t, "progress", result.State.LastProducer)
	assert.Equal(t, "Solid pace. Aim for 600 tomorrow.", result.State.Output())
}

func TestCrew_RunMultiAgent(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")

	crew := New()
	crew.RegisterAgent(agent.NewProgressCapability(llm))
	crew.RegisterAgent(agent.NewSummarizeCapability(llm))

	result, err := crew.Run(context.Background(), "Long journal entry", "summarize", "progress")
	require.NoError(t, err)

	messages := result.State.Log.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "summarize", messages[1].Producer)
	assert.Equal(t, "progress", messages[2].Producer)

	// Each agent saw the history up to its own turn.
	calls := llm.Calls()
	require.Len(t, calls, 2)
	assert.Len(t, calls[0].Messages, 1)
	assert.Len(t, calls[1].Messages, 2)
}

func TestCrew_Agents(t *testing.T) {
	llm := model.NewMockModel("test-model", "mock")

	crew := New()
	crew.RegisterAgent(agent.NewProgressCapability(llm))

	agents := crew.Agents()
	require.Len(t, agents, 1)
	assert.Equal(t, core.Info{ID: "progress", Description: "Analyzes progress and suggests next steps"}, agents[0])
}

func TestCrew_RunUnknownAgent(t *testing.T) {
	crew := New()

	_, err := crew.Run(context.Background(), "Hello", "ghost")
	require.Error(t, err)

	var unknown *core.UnknownAgentError
	assert.ErrorAs(t, err, &unknown)
}
