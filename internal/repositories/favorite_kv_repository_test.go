package repositories_test

import (
	"context"
	"testing"

	"recipebox/internal/common"
	"recipebox/internal/models"
	"recipebox/internal/repositories"
	"recipebox/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVFavoriteRepository_AddIsUniquePerID(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVFavoriteRepository(storage.NewMemoryStore())

	recipe := models.Recipe{ID: 1, Title: "Bread", Description: "Simple", Image: ""}
	require.NoError(t, repo.Add(ctx, recipe))

	// Favoriting the same recipe twice fails and leaves exactly one entry.
	err := repo.Add(ctx, recipe)
	assert.ErrorIs(t, err, common.ErrAlreadyFavorited)

	favorites, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestKVFavoriteRepository_SnapshotIsNotSynced(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	recipeRepo := repositories.NewKVRecipeRepository(store)
	favoriteRepo := repositories.NewKVFavoriteRepository(store)

	recipe := models.Recipe{ID: 1, Title: "Bread", Description: "Simple", Image: ""}
	require.NoError(t, recipeRepo.Create(ctx, recipe))
	require.NoError(t, favoriteRepo.Add(ctx, recipe))

	// Editing the source recipe must not touch the favorite snapshot.
	require.NoError(t, recipeRepo.Update(ctx, models.Recipe{ID: 1, Title: "Bread v2", Description: "Simple", Image: ""}))

	favorites, err := favoriteRepo.GetAll(ctx)
	assert.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Bread", favorites[0].Title)
}

func TestKVFavoriteRepository_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKVFavoriteRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Add(ctx, models.Recipe{ID: 1, Title: "Bread", Description: "Simple", Image: ""}))
	require.NoError(t, repo.Add(ctx, models.Recipe{ID: 2, Title: "Soup", Description: "Hearty", Image: ""}))

	assert.NoError(t, repo.Remove(ctx, 1))
	assert.NoError(t, repo.Remove(ctx, 1))
	assert.NoError(t, repo.Remove(ctx, 404))

	favorites, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, int64(2), favorites[0].ID)
}
