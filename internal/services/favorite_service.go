package services

import (
	"context"
	"encoding/json"
	"log"

	"recipebox/internal/models"
	"recipebox/internal/repositories"

	"github.com/google/uuid"
)

// FavoriteService handles business logic related to the favorites set.
type FavoriteService struct {
	repo      repositories.FavoriteRepository
	publisher EventPublisher
}

// NewFavoriteService creates a new FavoriteService. publisher may be nil.
func NewFavoriteService(repo repositories.FavoriteRepository, publisher EventPublisher) *FavoriteService {
	return &FavoriteService{
		repo:      repo,
		publisher: publisher,
	}
}

// List returns all favorites in the order they were added.
func (s *FavoriteService) List(ctx context.Context) ([]models.Favorite, error) {
	return s.repo.GetAll(ctx)
}

// Add stores a snapshot copy of the recipe. Favoriting an already-favorited
// recipe fails with common.ErrAlreadyFavorited and leaves the set unchanged.
func (s *FavoriteService) Add(ctx context.Context, recipe models.Recipe) error {
	if err := s.repo.Add(ctx, recipe); err != nil {
		return err
	}

	s.publishEvent("favorite.added", recipe.ID)
	return nil
}

// Remove deletes the favorite with the given id. Removing an id that is not
// favorited is a no-op.
func (s *FavoriteService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.publishEvent("favorite.removed", id)
	return nil
}

func (s *FavoriteService) publishEvent(routingKey string, recipeID int64) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event_id":  uuid.New().String(),
		"type":      routingKey,
		"recipe_id": recipeID,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for recipe %d: %v", routingKey, recipeID, err)
	}
}
