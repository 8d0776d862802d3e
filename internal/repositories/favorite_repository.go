package repositories

import (
	"context"

	"recipebox/internal/models"
)

// FavoriteRepository defines the interface for favorites data access.
type FavoriteRepository interface {
	GetAll(ctx context.Context) ([]models.Favorite, error)
	Add(ctx context.Context, recipe models.Recipe) error
	Remove(ctx context.Context, id int64) error
}
