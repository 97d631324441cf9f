package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emberhq/kindling/internal/domain"
	"github.com/emberhq/kindling/internal/store/memory"
)

func newExample(id, name string) domain.Example {
	return domain.Example{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FindByID returns nil for an absent id", func(t *testing.T) {
		repo := memory.NewRepository()

		found, err := repo.FindByID(ctx, "missing")

		require.NoError(t, err)
		require.Nil(t, found)
	})

	t.Run("Save stores and FindByID returns a copy", func(t *testing.T) {
		repo := memory.NewRepository()
		example := newExample("id-1", "Widget")

		stored, err := repo.Save(ctx, example)
		require.NoError(t, err)
		require.Equal(t, example, stored)

		found, err := repo.FindByID(ctx, "id-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, example, *found)
	})

	t.Run("Save is an idempotent upsert by id", func(t *testing.T) {
		repo := memory.NewRepository()

		_, err := repo.Save(ctx, newExample("id-1", "Widget"))
		require.NoError(t, err)

		_, err = repo.Save(ctx, newExample("id-1", "Renamed"))
		require.NoError(t, err)

		require.Equal(t, 1, repo.Size())

		found, err := repo.FindByID(ctx, "id-1")
		require.NoError(t, err)
		require.Equal(t, "Renamed", found.Name)
	})

	t.Run("FindAll returns every stored entity", func(t *testing.T) {
		repo := memory.NewRepository()

		_, err := repo.Save(ctx, newExample("id-1", "Widget"))
		require.NoError(t, err)
		_, err = repo.Save(ctx, newExample("id-2", "Gadget"))
		require.NoError(t, err)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("Delete on an absent id is a no-op", func(t *testing.T) {
		repo := memory.NewRepository()

		require.NoError(t, repo.Delete(ctx, "missing"))
	})

	t.Run("Delete removes the entity", func(t *testing.T) {
		repo := memory.NewRepository()

		_, err := repo.Save(ctx, newExample("id-1", "Widget"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, "id-1"))
		require.Equal(t, 0, repo.Size())
	})

	t.Run("Clear empties the store", func(t *testing.T) {
		repo := memory.NewRepository()

		_, err := repo.Save(ctx, newExample("id-1", "Widget"))
		require.NoError(t, err)

		repo.Clear()
		require.Equal(t, 0, repo.Size())
	})
}
