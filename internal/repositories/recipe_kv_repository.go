package repositories

import (
	"context"
	"fmt"

	"recipebox/internal/common"
	"recipebox/internal/models"
	"recipebox/internal/storage"
)

// KVRecipeRepository persists the recipes collection as one JSON array under
// the "recipes" key. Recipes keep their creation order: new recipes are
// appended to the tail.
type KVRecipeRepository struct {
	store storage.KeyValueStore
}

// NewKVRecipeRepository creates a new instance of KVRecipeRepository.
func NewKVRecipeRepository(store storage.KeyValueStore) *KVRecipeRepository {
	return &KVRecipeRepository{store: store}
}

// GetAll returns all recipes in stored order. Absent or malformed data reads
// as the empty collection.
func (r *KVRecipeRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	value, _, err := r.store.Get(ctx, storage.RecipesKey)
	if err != nil {
		return nil, err
	}
	return storage.DecodeLenient[models.Recipe](value), nil
}

// Create appends the recipe and persists the collection.
func (r *KVRecipeRepository) Create(ctx context.Context, recipe models.Recipe) error {
	return r.store.Update(ctx, storage.RecipesKey, func(current string, _ bool) (string, error) {
		recipes, err := storage.Decode[models.Recipe](current)
		if err != nil {
			return "", err
		}
		recipes = append(recipes, recipe)
		return storage.Encode(recipes)
	})
}

// Update replaces the recipe with the same id in place.
func (r *KVRecipeRepository) Update(ctx context.Context, recipe models.Recipe) error {
	return r.store.Update(ctx, storage.RecipesKey, func(current string, _ bool) (string, error) {
		recipes, err := storage.Decode[models.Recipe](current)
		if err != nil {
			return "", err
		}
		for i := range recipes {
			if recipes[i].ID == recipe.ID {
				recipes[i] = recipe
				return storage.Encode(recipes)
			}
		}
		return "", fmt.Errorf("%w: recipe with id %d", common.ErrNotFound, recipe.ID)
	})
}

// Delete removes the recipe with the given id. Removing an absent id leaves
// the collection unchanged and is not an error.
func (r *KVRecipeRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, storage.RecipesKey, func(current string, _ bool) (string, error) {
		recipes, err := storage.Decode[models.Recipe](current)
		if err != nil {
			return "", err
		}
		remaining := recipes[:0]
		for _, recipe := range recipes {
			if recipe.ID != id {
				remaining = append(remaining, recipe)
			}
		}
		return storage.Encode(remaining)
	})
}
