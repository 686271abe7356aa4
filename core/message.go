package core

// Role identifies the conversational origin of a message.
type Role string

const (
	// RoleUser marks the seed message supplied by the caller.
	RoleUser Role = "user"
	// RoleAssistant marks a reply produced by an agent capability.
	RoleAssistant Role = "assistant"
)

// Message is a single immutable entry in the conversation log. Producer
// names the agent that created the message and is empty only for user
// messages. Once appended to a Log a message is never mutated or removed.
type Message struct {
	Role     Role   `json:"role"`
	Producer string `json:"producer,omitempty"`
	Content  string `json:"content"`
}

// NewUserMessage creates the caller-authored seed message for a run.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAgentMessage creates an assistant reply attributed to the named agent.
func NewAgentMessage(producer, content string) Message {
	return Message{Role: RoleAssistant, Producer: producer, Content: content}
}

// Log is the append-only conversation history of a single run. Append is
// the only mutation permitted anywhere in the system; messages are never
// replaced, reordered or truncated, so insertion order is both
// chronological and causal order.
//
// A Log is owned by exactly one run and is never shared across concurrent
// invocations, so it needs no internal locking.
type Log struct {
	messages []Message
}

// NewLog creates a log seeded with the given messages in order.
func NewLog(seed ...Message) *Log {
	l := &Log{messages: make([]Message, 0, len(seed)+4)}
	l.messages = append(l.messages, seed...)
	return l
}

// Append adds one message at the tail of the log.
func (l *Log) Append(m Message) {
	l.messages = append(l.messages, m)
}

// Len returns the number of messages in the log.
func (l *Log) Len() int { return len(l.messages) }

// Messages returns a defensive copy of the full history so callers (agent
// capabilities in particular) cannot mutate the log through the snapshot.
func (l *Log) Messages() []Message {
	snapshot := make([]Message, len(l.messages))
	copy(snapshot, l.messages)
	return snapshot
}

// Last returns the most recent message and whether the log is non-empty.
func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}
