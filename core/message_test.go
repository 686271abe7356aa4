package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("Hello")

	assert.Equal(t, RoleUser, msg.Role)
	assert.Empty(t, msg.Producer)
	assert.Equal(t, "Hello", msg.Content)
}

func TestNewAgentMessage(t *testing.T) {
	msg := NewAgentMessage("summarize", "A summary.")

	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, "summarize", msg.Producer)
	assert.Equal(t, "A summary.", msg.Content)
}

func TestLog_Append(t *testing.T) {
	log := NewLog(NewUserMessage("Hello"))
	assert.Equal(t, 1, log.Len())

	log.Append(NewAgentMessage("progress", "Keep going."))
	assert.Equal(t, 2, log.Len())

	last, ok := log.Last()
	assert.True(t, ok)
	assert.Equal(t, "progress", last.Producer)
}

func TestLog_MessagesIsDefensiveCopy(t *testing.T) {
	log := NewLog(NewUserMessage("Hello"))

	snapshot := log.Messages()
	snapshot[0].Content = "tampered"

	fresh := log.Messages()
	assert.Equal(t, "Hello", fresh[0].Content)
}

func TestLog_AppendPreservesPrefixes(t *testing.T) {
	log := NewLog(NewUserMessage("seed"))

	var snapshots [][]Message
	for i := 0; i < 5; i++ {
		snapshots = append(snapshots, log.Messages())
		log.Append(NewAgentMessage("echo", "reply"))
	}

	final := log.Messages()
	assert.Equal(t, 6, len(final))

	// Every earlier snapshot must equal the corresponding prefix of the
	// final log: nothing was reordered or rewritten.
	for i, snap := range snapshots {
		assert.Equal(t, final[:i+1], snap)
	}
}

func TestLog_LastOnEmpty(t *testing.T) {
	log := NewLog()

	_, ok := log.Last()
	assert.False(t, ok)
	assert.Equal(t, 0, log.Len())
}
