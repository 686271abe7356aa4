// Package agent provides the model-backed capability implementation and the
// concrete journal agents (progress, summarize) the service registers at
// start-up. A ModelCapability pairs an identifier and system instruction
// with a model.Model; each Respond call sends the instruction plus the full
// conversation history and returns the model's single reply attributed to
// the agent.
package agent
