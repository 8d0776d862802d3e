package repositories

import (
	"context"
	"fmt"

	"recipebox/internal/common"
	"recipebox/internal/models"
	"recipebox/internal/storage"
)

// KVFavoriteRepository persists the favorites collection as one JSON array
// under the "favorites" key. A favorite is a snapshot copy of its source
// recipe; later edits to the recipe do not touch the favorite.
type KVFavoriteRepository struct {
	store storage.KeyValueStore
}

// NewKVFavoriteRepository creates a new instance of KVFavoriteRepository.
func NewKVFavoriteRepository(store storage.KeyValueStore) *KVFavoriteRepository {
	return &KVFavoriteRepository{store: store}
}

// GetAll returns all favorites in the order they were added. Absent or
// malformed data reads as the empty collection.
func (r *KVFavoriteRepository) GetAll(ctx context.Context) ([]models.Favorite, error) {
	value, _, err := r.store.Get(ctx, storage.FavoritesKey)
	if err != nil {
		return nil, err
	}
	return storage.DecodeLenient[models.Favorite](value), nil
}

// Add appends a snapshot copy of the recipe. At most one favorite may exist
// per source recipe id; the membership check runs inside the same atomic
// update that writes the collection.
func (r *KVFavoriteRepository) Add(ctx context.Context, recipe models.Recipe) error {
	return r.store.Update(ctx, storage.FavoritesKey, func(current string, _ bool) (string, error) {
		favorites, err := storage.Decode[models.Favorite](current)
		if err != nil {
			return "", err
		}
		for _, favorite := range favorites {
			if favorite.ID == recipe.ID {
				return "", fmt.Errorf("%w: id %d", common.ErrAlreadyFavorited, recipe.ID)
			}
		}
		favorites = append(favorites, recipe)
		return storage.Encode(favorites)
	})
}

// Remove deletes the favorite with the given id. Removing an absent id
// leaves the collection unchanged and is not an error.
func (r *KVFavoriteRepository) Remove(ctx context.Context, id int64) error {
	return r.store.Update(ctx, storage.FavoritesKey, func(current string, _ bool) (string, error) {
		favorites, err := storage.Decode[models.Favorite](current)
		if err != nil {
			return "", err
		}
		remaining := favorites[:0]
		for _, favorite := range favorites {
			if favorite.ID != id {
				remaining = append(remaining, favorite)
			}
		}
		return storage.Encode(remaining)
	})
}
