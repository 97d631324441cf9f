package echo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberhq/kindling/internal/domain"
	"github.com/emberhq/kindling/internal/llm/echo"
)

func TestClient_Chat(t *testing.T) {
	client := echo.NewClient()
	ctx := context.Background()

	content, err := client.Chat(ctx, []domain.Message{
		{Role: domain.RoleSystem, Content: "be terse"},
		{Role: domain.RoleUser, Content: "hello"},
	}, domain.CompletionOptions{})

	require.NoError(t, err)
	require.Equal(t, "[system]: be terse\n[user]: hello\n", content)
}

func TestClient_Complete(t *testing.T) {
	client := echo.NewClient()
	ctx := context.Background()

	t.Run("should wrap the prompt in a user message", func(t *testing.T) {
		content, err := client.Complete(ctx, "hello", domain.CompletionOptions{})

		require.NoError(t, err)
		require.Equal(t, "[user]: hello\n", content)
	})

	t.Run("should prepend the system prompt", func(t *testing.T) {
		content, err := client.Complete(ctx, "hello", domain.CompletionOptions{
			SystemPrompt: "be terse",
		})

		require.NoError(t, err)
		require.Equal(t, "[system]: be terse\n[user]: hello\n", content)
	})
}

func TestClient_Stream(t *testing.T) {
	client := echo.NewClient()
	ctx := context.Background()

	messages := []domain.Message{
		{Role: domain.RoleUser, Content: "the quick brown fox jumps over the lazy dog"},
	}

	t.Run("concatenated fragments equal the chat output", func(t *testing.T) {
		expected, err := client.Chat(ctx, messages, domain.CompletionOptions{})
		require.NoError(t, err)

		chunks, err := client.Stream(ctx, messages, domain.CompletionOptions{})
		require.NoError(t, err)

		var builder strings.Builder
		sawDone := false
		for chunk := range chunks {
			require.NoError(t, chunk.Err)
			builder.WriteString(chunk.Delta)
			if chunk.Done {
				sawDone = true
			}
		}

		require.True(t, sawDone)
		require.Equal(t, expected, builder.String())
	})

	t.Run("consumer may stop early without draining", func(t *testing.T) {
		streamCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		chunks, err := client.Stream(streamCtx, messages, domain.CompletionOptions{})
		require.NoError(t, err)

		first, ok := <-chunks
		require.True(t, ok)
		require.NotEmpty(t, first.Delta)

		// Abandon the stream; cancellation releases the producer.
		cancel()
	})
}
