package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCapability is a minimal Capability for registry tests.
type fakeCapability struct {
	id          string
	description string
}

func (f *fakeCapability) ID() string          { return f.id }
func (f *fakeCapability) Description() string { return f.description }

func (f *fakeCapability) Respond(_ context.Context, _ []Message) (Message, error) {
	return NewAgentMessage(f.id, "ok"), nil
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := NewRegistry()
	progress := &fakeCapability{id: "progress", description: "Progress agent"}

	registry.Register(progress)

	resolved, err := registry.Resolve("progress")
	require.NoError(t, err)
	assert.Equal(t, "progress", resolved.ID())
	assert.Equal(t, "Progress agent", resolved.Description())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve("bogus")
	require.Error(t, err)

	var unknown *UnknownAgentError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "bogus", unknown.ID)
}

func TestRegistry_ReregisterOverwrites(t *testing.T) {
	registry := NewRegistry()
	first := &fakeCapability{id: "summarize", description: "first"}
	second := &fakeCapability{id: "summarize", description: "second"}

	registry.Register(first)
	registry.Register(second)

	resolved, err := registry.Resolve("summarize")
	require.NoError(t, err)
	assert.Equal(t, "second", resolved.Description())
	assert.Len(t, registry.Names(), 1)
}

func TestRegistry_NamesSorted(t *testing.T) {
	registry := NewRegistry(
		&fakeCapability{id: "summarize"},
		&fakeCapability{id: "progress"},
		&fakeCapability{id: "echo"},
	)

	assert.Equal(t, []string{"echo", "progress", "summarize"}, registry.Names())
}

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry(
		&fakeCapability{id: "summarize", description: "Summarizes your text concisely"},
		&fakeCapability{id: "progress", description: "Analyzes progress and suggests next steps"},
	)

	infos := registry.List()
	require.Len(t, infos, 2)
	assert.Equal(t, Info{ID: "progress", Description: "Analyzes progress and suggests next steps"}, infos[0])
	assert.Equal(t, Info{ID: "summarize", Description: "Summarizes your text concisely"}, infos[1])
}
