// Package litellm provides the completion adapter over an OpenAI-compatible
// LiteLLM proxy, using the official OpenAI SDK. It implements the
// domain.CompletionClient interface and isolates provider-specific request
// shaping beneath it; transport failures propagate to callers unretried.
package litellm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/emberhq/kindling/internal/domain"
	"github.com/emberhq/kindling/internal/observability"
)

// Client implements domain.CompletionClient against the configured proxy.
type Client struct {
	client   openai.Client
	defaults Config
}

// NewClient creates a new LiteLLM client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LiteLLM API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:   openai.NewClient(opts...),
		defaults: cfg,
	}, nil
}

// Complete sends a single-shot prompt, prepending the optional system prompt
// as a system message, and delegates to Chat.
func (c *Client) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	messages := make([]domain.Message, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: opts.SystemPrompt})
	}
	messages = append(messages, domain.Message{Role: domain.RoleUser, Content: prompt})

	return c.Chat(ctx, messages, opts)
}

// Chat sends the ordered conversation and returns the first choice's text
// content, or the empty string if the proxy returns no choices.
func (c *Client) Chat(ctx context.Context, messages []domain.Message, opts domain.CompletionOptions) (string, error) {
	opts = c.applyDefaults(opts)

	logger := observability.FromContext(ctx)
	logger.Debug("calling completion proxy",
		observability.String("model", opts.Model),
		observability.Int("message_count", len(messages)),
	)

	resp, err := c.client.Chat.Completions.New(ctx, c.toSDKParams(messages, opts))
	if err != nil {
		logger.Error("completion proxy call failed", observability.Error(err))
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	logger.Debug("completion proxy call succeeded",
		observability.String("model", opts.Model),
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
		observability.Int("total_tokens", int(resp.Usage.TotalTokens)),
	)

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream opens a streaming request and converts the SDK stream into a
// forward-only channel of fragments. The channel is closed when the proxy
// signals completion; an abandoning consumer cancels via ctx.
func (c *Client) Stream(ctx context.Context, messages []domain.Message, opts domain.CompletionOptions) (<-chan domain.StreamChunk, error) {
	opts = c.applyDefaults(opts)

	logger := observability.FromContext(ctx)
	logger.Debug("calling streaming completion proxy",
		observability.String("model", opts.Model),
		observability.Int("message_count", len(messages)),
	)

	stream := c.client.Chat.Completions.NewStreaming(ctx, c.toSDKParams(messages, opts))

	chunks := make(chan domain.StreamChunk)

	go func() {
		defer close(chunks)
		defer logger.Debug("stream completed")

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}

			delta := chunk.Choices[0].Delta.Content
			done := chunk.Choices[0].FinishReason != ""

			select {
			case chunks <- domain.StreamChunk{Delta: delta, Done: done}:
			case <-ctx.Done():
				return
			}

			if done {
				return
			}
		}

		if err := stream.Err(); err != nil && !errors.Is(err, io.EOF) {
			select {
			case chunks <- domain.StreamChunk{Err: fmt.Errorf("stream error: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return chunks, nil
}

// applyDefaults fills zero-valued options from the configured defaults.
// An explicit Temperature of 0 therefore reads as unset and gets the default.
func (c *Client) applyDefaults(opts domain.CompletionOptions) domain.CompletionOptions {
	if opts.Model == "" {
		opts.Model = c.defaults.Model
	}
	if opts.Temperature == 0 {
		opts.Temperature = c.defaults.Temperature
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = c.defaults.MaxTokens
	}
	return opts
}

// toSDKParams converts domain messages and options to SDK ChatCompletionNewParams.
func (c *Client) toSDKParams(messages []domain.Message, opts domain.CompletionOptions) openai.ChatCompletionNewParams {
	sdkMessages := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case domain.RoleAssistant:
			sdkMessages[i] = openai.AssistantMessage(msg.Content)
		case domain.RoleSystem:
			sdkMessages[i] = openai.SystemMessage(msg.Content)
		default:
			sdkMessages[i] = openai.UserMessage(msg.Content)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(opts.Model),
		Messages: sdkMessages,
	}

	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}

	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	return params
}
