package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/emberhq/kindling/internal/observability"
)

// ExampleService orchestrates validation, repository calls and logging.
// Expected domain failures come back inside a Result; the plain error return
// carries only infrastructure failures (storage, transport) and is nil for
// the in-memory repository.
type ExampleService struct {
	repo     ExampleRepository
	validate *validator.Validate
}

// NewExampleService creates a new example service (DI constructor).
func NewExampleService(repo ExampleRepository) *ExampleService {
	return &ExampleService{
		repo:     repo,
		validate: validator.New(),
	}
}

// Create validates the input, persists a new Example and returns it.
// Validation failures come back as a Result failure, never as an error.
func (s *ExampleService) Create(ctx context.Context, input CreateExampleInput) (Result[Example], error) {
	if appErr := ValidateCreateExampleInput(s.validate, input); appErr != nil {
		return Fail[Example](appErr), nil
	}

	example := Example{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	stored, err := s.repo.Save(ctx, example)
	if err != nil {
		return Result[Example]{}, fmt.Errorf("failed to save example: %w", err)
	}

	observability.FromContext(ctx).Info("example created",
		observability.String("example_id", stored.ID),
		observability.String("name", stored.Name),
	)

	return Ok(stored), nil
}

// FindByID looks up an Example, returning a not_found failure when absent.
func (s *ExampleService) FindByID(ctx context.Context, id string) (Result[Example], error) {
	example, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Result[Example]{}, fmt.Errorf("failed to look up example: %w", err)
	}

	if example == nil {
		return Fail[Example](NewNotFoundError("example", id)), nil
	}

	return Ok(*example), nil
}

// FindAll returns the whole collection. A pure read of the full set has no
// expected failure mode, so there is no Result wrapping here.
func (s *ExampleService) FindAll(ctx context.Context) ([]Example, error) {
	examples, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list examples: %w", err)
	}
	return examples, nil
}

// Delete removes an Example, returning a not_found failure when it does not
// exist.
func (s *ExampleService) Delete(ctx context.Context, id string) (Result[Void], error) {
	example, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Result[Void]{}, fmt.Errorf("failed to look up example: %w", err)
	}

	if example == nil {
		return Fail[Void](NewNotFoundError("example", id)), nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return Result[Void]{}, fmt.Errorf("failed to delete example: %w", err)
	}

	observability.FromContext(ctx).Info("example deleted",
		observability.String("example_id", id),
	)

	return OkVoid(), nil
}
