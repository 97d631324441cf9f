// Package redis provides a Redis-backed Example repository. Entities are
// stored as JSON values under a key prefix so a single instance can share a
// Redis database with other tenants.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/emberhq/kindling/internal/domain"
)

const (
	keyPrefix     = "kindling:example:"
	scanBatchSize = 100
)

// Repository implements domain.ExampleRepository on top of Redis.
type Repository struct {
	client *redis.Client
}

// NewRepository creates a repository from a Redis URL
// (redis://[user:pass@]host:port/db).
func NewRepository(url string) (*Repository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &Repository{client: redis.NewClient(opts)}, nil
}

// NewRepositoryWithClient wraps an existing client, for tests.
func NewRepositoryWithClient(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// FindByID returns the stored entity, or (nil, nil) when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Example, error) {
	data, err := r.client.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get example: %w", err)
	}

	var example domain.Example
	if err := json.Unmarshal(data, &example); err != nil {
		return nil, fmt.Errorf("failed to decode example: %w", err)
	}
	return &example, nil
}

// FindAll scans the key space and returns every stored entity. Order follows
// the scan cursor and is not defined.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Example, error) {
	var examples []domain.Example

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			// Deleted between scan and get.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get example: %w", err)
		}

		var example domain.Example
		if err := json.Unmarshal(data, &example); err != nil {
			return nil, fmt.Errorf("failed to decode example: %w", err)
		}
		examples = append(examples, example)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan examples: %w", err)
	}

	return examples, nil
}

// Save upserts the entity by id and returns the stored value.
func (r *Repository) Save(ctx context.Context, example domain.Example) (domain.Example, error) {
	data, err := json.Marshal(example)
	if err != nil {
		return domain.Example{}, fmt.Errorf("failed to encode example: %w", err)
	}

	if err := r.client.Set(ctx, Key(example.ID), data, 0).Err(); err != nil {
		return domain.Example{}, fmt.Errorf("failed to set example: %w", err)
	}
	return example, nil
}

// Delete removes the entity. Deleting an absent id is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, Key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete example: %w", err)
	}
	return nil
}

// Key returns the Redis key for an example id.
func Key(id string) string {
	return keyPrefix + id
}
