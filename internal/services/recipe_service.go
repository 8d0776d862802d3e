package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"recipebox/internal/common"
	"recipebox/internal/models"
	"recipebox/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes domain events to a message broker. A nil
// publisher disables publishing without changing any other behavior.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// idGenerator hands out millisecond-timestamp recipe ids, bumped past the
// last issued id so that two recipes created within the same clock tick can
// never collide.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// RecipeService handles business logic related to recipes.
type RecipeService struct {
	repo      repositories.RecipeRepository
	publisher EventPublisher
	ids       idGenerator
}

// NewRecipeService creates a new RecipeService. publisher may be nil.
func NewRecipeService(repo repositories.RecipeRepository, publisher EventPublisher) *RecipeService {
	return &RecipeService{
		repo:      repo,
		publisher: publisher,
	}
}

// List returns all recipes in creation order.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.repo.GetAll(ctx)
}

// Add creates a new recipe. Title and description are required; the image
// may be empty. The assigned id is the creation time in milliseconds, kept
// strictly increasing within the process.
func (s *RecipeService) Add(ctx context.Context, title, description, image string) (*models.Recipe, error) {
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", common.ErrValidation)
	}

	recipe := models.Recipe{
		ID:          s.ids.next(),
		Title:       title,
		Description: description,
		Image:       image,
	}
	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	s.publishEvent("recipe.created", recipe)
	return &recipe, nil
}

// Update replaces the mutable fields of the recipe with the given id.
func (s *RecipeService) Update(ctx context.Context, id int64, title, description, image string) error {
	recipe := models.Recipe{
		ID:          id,
		Title:       title,
		Description: description,
		Image:       image,
	}
	if err := s.repo.Update(ctx, recipe); err != nil {
		return err
	}

	s.publishEvent("recipe.updated", recipe)
	return nil
}

// Remove deletes the recipe with the given id. Removing an unknown id is a
// no-op, not an error.
func (s *RecipeService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent("recipe.deleted", models.Recipe{ID: id})
	return nil
}

// publishEvent emits a recipe event when a publisher is configured. Failures
// are logged and swallowed: publishing is best-effort and never blocks the
// caller's mutation.
func (s *RecipeService) publishEvent(routingKey string, recipe models.Recipe) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"event_id": uuid.New().String(),
		"type":     routingKey,
		"recipe":   recipe,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for recipe %d: %v", routingKey, recipe.ID, err)
	}
}
