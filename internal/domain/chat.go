package domain

// ChatMessage is the provider-agnostic chat message shape used by the handler
// and LLM integrations.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider identifiers as configured by the admin panel.
const (
	ProviderDefault  = "lovable"
	ProviderChatGPT  = "chatgpt"
	ProviderGrok     = "grok"
	ProviderDeepSeek = "deepseek"
	ProviderGemini   = "gemini"
)

// ProviderConfig selects an external chat provider for a single request.
// It is what the chat widget (or the stored admin settings) hands to the
// proxy; APIKey is only ever populated server-side or by the caller.
type ProviderConfig struct {
	Provider     string `json:"provider"`
	APIKey       string `json:"apiKey"`
	Model        string `json:"model"`
	SystemPrompt string `json:"systemPrompt"`
}

// ChatConfig is the persisted admin chat setting. The API key lives in the
// secret store; HasAPIKey only reports whether one is set.
type ChatConfig struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	SystemPrompt string `json:"systemPrompt"`
	HasAPIKey    bool   `json:"hasApiKey"`
}

// ProviderModels lists the models the admin panel offers per provider. The
// first entry is the one selected when the provider changes.
var ProviderModels = map[string][]string{
	ProviderChatGPT:  {"gpt-5", "gpt-5-mini", "gpt-5-nano", "gpt-4o", "gpt-4o-mini"},
	ProviderGrok:     {"grok-2", "grok-2-mini"},
	ProviderDeepSeek: {"deepseek-chat", "deepseek-coder"},
	ProviderGemini:   {"gemini-2.0-flash-exp", "gemini-1.5-pro", "gemini-1.5-flash"},
}

// ChatSummary is recorded when a visitor closes the chat widget.
type ChatSummary struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Messages  int    `json:"messages"`
	Preview   string `json:"preview"`
}
