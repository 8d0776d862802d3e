package handlers

import (
	"log"
	"strconv"

	"recipebox/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RecipeHandler handles HTTP requests for the recipe catalog.
type RecipeHandler struct {
	recipeService *services.RecipeService
	validate      *validator.Validate
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the recipe routes with the Fiber app.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Get("/", h.HandleList)
	recipeRoutes.Post("/", h.HandleAdd)
	recipeRoutes.Put("/:id", h.HandleUpdate)
	recipeRoutes.Delete("/:id", h.HandleRemove)
}

// RecipeRequest represents the request body for creating or updating a
// recipe. The image is an opaque string, possibly empty, and is never
// inspected.
type RecipeRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

// HandleList returns all recipes in creation order.
func (h *RecipeHandler) HandleList(c *fiber.Ctx) error {
	recipes, err := h.recipeService.List(c.Context())
	if err != nil {
		return respondError(c, "Could not list recipes", err)
	}
	return c.JSON(recipes)
}

// HandleAdd creates a new recipe.
func (h *RecipeHandler) HandleAdd(c *fiber.Ctx) error {
	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	recipe, err := h.recipeService.Add(c.Context(), req.Title, req.Description, req.Image)
	if err != nil {
		log.Printf("Error adding recipe: %v", err)
		return respondError(c, "Could not add recipe", err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// HandleUpdate replaces the mutable fields of an existing recipe.
func (h *RecipeHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid recipe id",
			"error":   err.Error(),
		})
	}

	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.recipeService.Update(c.Context(), id, req.Title, req.Description, req.Image); err != nil {
		log.Printf("Error updating recipe %d: %v", id, err)
		return respondError(c, "Could not update recipe", err)
	}

	return c.JSON(fiber.Map{
		"message": "Recipe updated successfully",
	})
}

// HandleRemove deletes a recipe. Deleting an unknown id still succeeds.
func (h *RecipeHandler) HandleRemove(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid recipe id",
			"error":   err.Error(),
		})
	}

	if err := h.recipeService.Remove(c.Context(), id); err != nil {
		return respondError(c, "Could not delete recipe", err)
	}

	return c.JSON(fiber.Map{
		"message": "Recipe deleted successfully",
	})
}

func parseRecipeID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
