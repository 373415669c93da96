package domain

// Conversation is one provider call: the caller-supplied history plus the
// resolved model and system prompt.
type Conversation struct {
	Model        string
	SystemPrompt string
	Messages     []ChatMessage
}
