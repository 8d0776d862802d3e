package handlers

import (
	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PreferenceHandler handles HTTP requests for display preferences.
type PreferenceHandler struct {
	preferenceService *services.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// RegisterRoutes registers the preference routes with the Fiber app.
func (h *PreferenceHandler) RegisterRoutes(router fiber.Router) {
	prefRoutes := router.Group("/preferences")
	prefRoutes.Get("/", h.HandleGet)
	prefRoutes.Put("/", h.HandleSave)
}

// HandleGet returns the saved preferences, or defaults.
func (h *PreferenceHandler) HandleGet(c *fiber.Ctx) error {
	prefs, err := h.preferenceService.Get(c.Context())
	if err != nil {
		return respondError(c, "Could not read preferences", err)
	}
	return c.JSON(prefs)
}

// HandleSave persists new preferences and returns the normalized result.
func (h *PreferenceHandler) HandleSave(c *fiber.Ctx) error {
	var prefs models.Preferences
	if err := c.BodyParser(&prefs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	saved, err := h.preferenceService.Save(c.Context(), prefs)
	if err != nil {
		return respondError(c, "Could not save preferences", err)
	}
	return c.JSON(saved)
}
