// Package memory provides a map-backed Example repository for tests and
// prototyping. Storage lives exactly as long as the Repository value.
package memory

import (
	"context"
	"sync"

	"github.com/emberhq/kindling/internal/domain"
)

// Repository implements domain.ExampleRepository with an in-process map.
// The mutex makes individual map operations safe under concurrent use;
// concurrent saves to the same id remain last-write-wins.
type Repository struct {
	mu       sync.RWMutex
	examples map[string]domain.Example
}

// NewRepository creates a new in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		examples: make(map[string]domain.Example),
	}
}

// FindByID returns the stored entity, or (nil, nil) when absent.
func (r *Repository) FindByID(_ context.Context, id string) (*domain.Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	example, exists := r.examples[id]
	if !exists {
		return nil, nil
	}
	return &example, nil
}

// FindAll returns every stored entity in unspecified order.
func (r *Repository) FindAll(_ context.Context) ([]domain.Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	examples := make([]domain.Example, 0, len(r.examples))
	for _, example := range r.examples {
		examples = append(examples, example)
	}
	return examples, nil
}

// Save upserts the entity by id and returns the stored value.
func (r *Repository) Save(_ context.Context, example domain.Example) (domain.Example, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples[example.ID] = example
	return example, nil
}

// Delete removes the entity. Deleting an absent id is a no-op.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.examples, id)
	return nil
}

// Clear empties the store. Test helper, not part of the repository contract.
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples = make(map[string]domain.Example)
}

// Size returns the current entity count. Test helper, not part of the
// repository contract.
func (r *Repository) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.examples)
}
