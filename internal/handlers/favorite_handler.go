package handlers

import (
	"log"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for the favorites set.
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
	validate        *validator.Validate
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the favorites routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleList)
	favoriteRoutes.Post("/", h.HandleAdd)
	favoriteRoutes.Delete("/:id", h.HandleRemove)
}

// HandleList returns all favorites.
func (h *FavoriteHandler) HandleList(c *fiber.Ctx) error {
	favorites, err := h.favoriteService.List(c.Context())
	if err != nil {
		return respondError(c, "Could not list favorites", err)
	}
	return c.JSON(favorites)
}

// HandleAdd stores a snapshot of the posted recipe in the favorites set.
// The body carries the full recipe because a favorite is a copy, not a
// reference.
func (h *FavoriteHandler) HandleAdd(c *fiber.Ctx) error {
	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(recipe); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.favoriteService.Add(c.Context(), recipe); err != nil {
		log.Printf("Error adding favorite %d: %v", recipe.ID, err)
		return respondError(c, "Could not add to favorites", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Recipe added to favorites",
	})
}

// HandleRemove deletes a favorite. Removing an id that is not favorited
// still succeeds.
func (h *FavoriteHandler) HandleRemove(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid recipe id",
			"error":   err.Error(),
		})
	}

	if err := h.favoriteService.Remove(c.Context(), id); err != nil {
		return respondError(c, "Could not remove from favorites", err)
	}

	return c.JSON(fiber.Map{
		"message": "Recipe removed from favorites",
	})
}
