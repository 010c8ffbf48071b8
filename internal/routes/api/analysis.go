package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/models"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/repository"
)

// Analyze handles move analysis requests.
func Analyze(c *fiber.Ctx) error {
	var payload models.AnalysisRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	state, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewAnalysisRepository(c)
	response, err := repo.Analyze(c.Context(), payload.State, state)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
