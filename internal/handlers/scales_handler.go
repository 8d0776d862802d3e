package handlers

import (
	"strconv"

	"recipebox/pkg/scales"

	"github.com/gofiber/fiber/v2"
)

// ScalesHandler handles HTTP requests for weight conversion.
type ScalesHandler struct{}

// NewScalesHandler creates a new ScalesHandler.
func NewScalesHandler() *ScalesHandler {
	return &ScalesHandler{}
}

// RegisterRoutes registers the scales routes with the Fiber app.
func (h *ScalesHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/scales/convert", h.HandleConvert)
}

// HandleConvert converts a gram weight to its imperial display form, e.g.
// GET /scales/convert?grams=500 -> {"grams":500,"converted":"1lb 1.6oz"}.
func (h *ScalesHandler) HandleConvert(c *fiber.Ctx) error {
	grams, err := strconv.ParseFloat(c.Query("grams"), 64)
	if err != nil || grams < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'grams' must be a non-negative number",
		})
	}

	return c.JSON(fiber.Map{
		"grams":     grams,
		"converted": scales.Convert(grams),
	})
}
