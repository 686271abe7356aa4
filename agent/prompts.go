package agent

import "github.com/Akesh-M/JournalAssistCrew/model"

// System prompts for the built-in journal agents.
const (
	progressInstruction = `You are a Progress Agent. Your role is to:
- Analyze the user's current progress (e.g., journal entries, goals, tasks).
- Identify what has been accomplished and what is pending.
- Suggest clear, actionable next steps to maintain or accelerate progress.
- Be encouraging and specific. Respond in a structured, readable way.`

	summarizeInstruction = `You are a Summarize Agent. Your role is to:
- Summarize the user's input clearly and concisely.
- Preserve key points, decisions, and outcomes.
- Use bullet points or short paragraphs when helpful.
- Keep the summary focused and easy to scan.`
)

// NewProgressCapability returns the "progress" agent: it evaluates the
// user's progress and recommends next actions.
func NewProgressCapability(llm model.Model) *ModelCapability {
	return NewModelCapability("progress", llm, func(o *ModelCapabilityOptions) {
		o.Description = "Analyzes progress and suggests next steps"
		o.Instruction = NewInstructionFromText(progressInstruction)
	})
}

// NewSummarizeCapability returns the "summarize" agent: it condenses the
// conversation so far into a concise summary.
func NewSummarizeCapability(llm model.Model) *ModelCapability {
	return NewModelCapability("summarize", llm, func(o *ModelCapabilityOptions) {
		o.Description = "Summarizes your text concisely"
		o.Instruction = NewInstructionFromText(summarizeInstruction)
	})
}
