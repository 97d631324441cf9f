package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberhq/kindling/internal/domain"
	"github.com/emberhq/kindling/internal/store/memory"
)

// failingRepo simulates an infrastructure failure on every operation.
type failingRepo struct {
	err error
}

func (f *failingRepo) FindByID(_ context.Context, _ string) (*domain.Example, error) {
	return nil, f.err
}

func (f *failingRepo) FindAll(_ context.Context) ([]domain.Example, error) {
	return nil, f.err
}

func (f *failingRepo) Save(_ context.Context, _ domain.Example) (domain.Example, error) {
	return domain.Example{}, f.err
}

func (f *failingRepo) Delete(_ context.Context, _ string) error {
	return f.err
}

func TestExampleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should create example and round trip through FindByID", func(t *testing.T) {
		repo := memory.NewRepository()
		service := domain.NewExampleService(repo)

		created, err := service.Create(ctx, domain.CreateExampleInput{
			Name:        "Widget",
			Description: "a thing",
		})

		require.NoError(t, err)
		require.True(t, created.IsOk())
		require.NotEmpty(t, created.Value().ID)
		require.False(t, created.Value().CreatedAt.IsZero())
		require.Equal(t, "Widget", created.Value().Name)

		found, err := service.FindByID(ctx, created.Value().ID)
		require.NoError(t, err)
		require.True(t, found.IsOk())
		require.Equal(t, created.Value(), found.Value())

		all, err := service.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.Equal(t, "Widget", all[0].Name)
	})

	t.Run("should return validation failure for empty name", func(t *testing.T) {
		repo := memory.NewRepository()
		service := domain.NewExampleService(repo)

		created, err := service.Create(ctx, domain.CreateExampleInput{Name: ""})

		require.NoError(t, err)
		require.False(t, created.IsOk())
		require.Equal(t, domain.ErrKindValidation, created.Err().Kind)
		require.NotEmpty(t, created.Err().Issues)
		require.Equal(t, "name", created.Err().Issues[0].Field)
		require.Equal(t, 0, repo.Size())
	})

	t.Run("should return validation failure for name over 100 characters", func(t *testing.T) {
		repo := memory.NewRepository()
		service := domain.NewExampleService(repo)

		created, err := service.Create(ctx, domain.CreateExampleInput{
			Name: strings.Repeat("x", 101),
		})

		require.NoError(t, err)
		require.False(t, created.IsOk())
		require.Equal(t, domain.ErrKindValidation, created.Err().Kind)
		require.Equal(t, 0, repo.Size())
	})

	t.Run("should accept a 100 character name", func(t *testing.T) {
		repo := memory.NewRepository()
		service := domain.NewExampleService(repo)

		created, err := service.Create(ctx, domain.CreateExampleInput{
			Name: strings.Repeat("x", 100),
		})

		require.NoError(t, err)
		require.True(t, created.IsOk())
		require.Equal(t, 1, repo.Size())
	})

	t.Run("should propagate repository failure as a plain error", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		service := domain.NewExampleService(&failingRepo{err: repoErr})

		_, err := service.Create(ctx, domain.CreateExampleInput{Name: "Widget"})

		require.Error(t, err)
		require.ErrorIs(t, err, repoErr)
	})
}

func TestExampleService_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("should return not_found for unknown id", func(t *testing.T) {
		service := domain.NewExampleService(memory.NewRepository())

		found, err := service.FindByID(ctx, "nonexistent-id")

		require.NoError(t, err)
		require.False(t, found.IsOk())
		require.Equal(t, domain.ErrKindNotFound, found.Err().Kind)
		require.Equal(t, "example", found.Err().Resource)
		require.Equal(t, "nonexistent-id", found.Err().ID)
	})

	t.Run("should return stored fields exactly", func(t *testing.T) {
		repo := memory.NewRepository()
		service := domain.NewExampleService(repo)

		created, err := service.Create(ctx, domain.CreateExampleInput{
			Name:        "Gadget",
			Description: "exact",
		})
		require.NoError(t, err)
		require.True(t, created.IsOk())

		found, err := service.FindByID(ctx, created.Value().ID)
		require.NoError(t, err)
		require.True(t, found.IsOk())
		require.Equal(t, created.Value().ID, found.Value().ID)
		require.Equal(t, "Gadget", found.Value().Name)
		require.Equal(t, "exact", found.Value().Description)
		require.Equal(t, created.Value().CreatedAt, found.Value().CreatedAt)
	})
}

func TestExampleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("should return not_found for unknown id and never error", func(t *testing.T) {
		service := domain.NewExampleService(memory.NewRepository())

		deleted, err := service.Delete(ctx, "nonexistent-id")

		require.NoError(t, err)
		require.False(t, deleted.IsOk())
		require.Equal(t, domain.ErrKindNotFound, deleted.Err().Kind)
	})

	t.Run("should delete an existing example", func(t *testing.T) {
		repo := memory.NewRepository()
		service := domain.NewExampleService(repo)

		created, err := service.Create(ctx, domain.CreateExampleInput{Name: "Widget"})
		require.NoError(t, err)
		require.True(t, created.IsOk())

		deleted, err := service.Delete(ctx, created.Value().ID)
		require.NoError(t, err)
		require.True(t, deleted.IsOk())
		require.Equal(t, 0, repo.Size())

		found, err := service.FindByID(ctx, created.Value().ID)
		require.NoError(t, err)
		require.False(t, found.IsOk())
	})
}
