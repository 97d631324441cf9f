// Package echo provides a deterministic in-process completion client that
// echoes back its input. It implements the domain.CompletionClient interface
// without external calls, for tests and local development. Streamed fragments
// concatenate to exactly the Chat output for the same inputs.
package echo

import (
	"context"
	"fmt"
	"strings"

	"github.com/emberhq/kindling/internal/domain"
	"github.com/emberhq/kindling/internal/observability"
)

const chunkRunes = 8

// Client implements domain.CompletionClient by echoing its input.
type Client struct{}

// NewClient creates a new echo client.
func NewClient() *Client {
	return &Client{}
}

// Complete prepends the optional system prompt and delegates to Chat.
func (c *Client) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	messages := make([]domain.Message, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: opts.SystemPrompt})
	}
	messages = append(messages, domain.Message{Role: domain.RoleUser, Content: prompt})

	return c.Chat(ctx, messages, opts)
}

// Chat returns a deterministic rendering of the conversation.
func (c *Client) Chat(ctx context.Context, messages []domain.Message, opts domain.CompletionOptions) (string, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("echoing request",
		observability.String("model", opts.Model),
		observability.Int("message_count", len(messages)),
	)

	return render(messages), nil
}

// Stream yields the Chat output in fixed-size rune chunks.
func (c *Client) Stream(ctx context.Context, messages []domain.Message, opts domain.CompletionOptions) (<-chan domain.StreamChunk, error) {
	content := render(messages)
	chunks := make(chan domain.StreamChunk)

	go func() {
		defer close(chunks)

		runes := []rune(content)
		for start := 0; start < len(runes); start += chunkRunes {
			end := min(start+chunkRunes, len(runes))

			select {
			case chunks <- domain.StreamChunk{Delta: string(runes[start:end])}:
			case <-ctx.Done():
				return
			}
		}

		select {
		case chunks <- domain.StreamChunk{Done: true}:
		case <-ctx.Done():
		}
	}()

	return chunks, nil
}

// render builds the echoed content from the ordered messages.
func render(messages []domain.Message) string {
	var builder strings.Builder
	for _, msg := range messages {
		builder.WriteString(fmt.Sprintf("[%s]: %s\n", msg.Role, msg.Content))
	}
	return builder.String()
}
