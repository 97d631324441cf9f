package domain

import "context"

// CompletionClient is the unified adapter over a text-generation provider.
// Implementations translate these calls into the provider's wire protocol;
// transport failures are returned as plain errors and are never retried here.
type CompletionClient interface {
	// Complete sends a single-shot prompt and returns the response text.
	// An optional system prompt from the options is prepended as a system
	// message before the user prompt.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)

	// Chat sends an ordered conversation and returns the first choice's
	// text content, or the empty string if the provider returns no choices.
	Chat(ctx context.Context, messages []Message, opts CompletionOptions) (string, error)

	// Stream opens a streaming request and returns a forward-only channel
	// of incremental fragments. The channel is closed when the provider
	// signals completion. Consumers may abandon the channel early.
	Stream(ctx context.Context, messages []Message, opts CompletionOptions) (<-chan StreamChunk, error)
}

// ExampleRepository abstracts storage for Example entities.
type ExampleRepository interface {
	// FindByID returns the entity, or (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*Example, error)

	// FindAll returns every stored entity. Order is not defined.
	FindAll(ctx context.Context) ([]Example, error)

	// Save upserts the entity by id and returns the stored value.
	Save(ctx context.Context, example Example) (Example, error)

	// Delete removes the entity. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}
