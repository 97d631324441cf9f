package domain

// Message represents a single chat turn.
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// Roles accepted in a Message.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionOptions carries sampling parameters for a completion call.
// Zero values are replaced with the configured defaults by the client. That
// makes an explicit Temperature of 0 indistinguishable from unset; callers
// wanting near-greedy sampling should pass a small positive value instead.
type CompletionOptions struct {
	Model        string  `json:"model,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	MaxTokens    int     `json:"max_tokens,omitempty"`
	SystemPrompt string  `json:"system_prompt,omitempty"` // single-shot Complete only
}

// StreamChunk represents a single streaming response fragment.
type StreamChunk struct {
	Delta string `json:"delta"`
	Done  bool   `json:"done"`
	Err   error  `json:"-"`
}

// Usage tracks token consumption reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
