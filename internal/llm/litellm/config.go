package litellm

// Config contains the completion proxy settings. The proxy speaks the
// OpenAI chat-completions shape, so the fields map to OpenAI SDK options:
//   - BaseURL: option.WithBaseURL()
//   - APIKey: option.WithAPIKey()
//
// Model, Temperature and MaxTokens are the defaults applied to requests that
// leave the corresponding CompletionOptions fields zero.
type Config struct {
	BaseURL     string  `env:"LITELLM_URL"     envDefault:"http://localhost:4000"`
	APIKey      string  `env:"LITELLM_API_KEY" envDefault:"sk-1234"`
	Model       string  `env:"LLM_MODEL"       envDefault:"gpt-4o"`
	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS"  envDefault:"1000"`
}
