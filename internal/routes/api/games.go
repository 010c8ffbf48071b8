package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/models"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/repository"
)

// SaveGame handles archiving of a finished game.
func SaveGame(c *fiber.Ctx) error {
	var payload models.SaveGameRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.SaveGame(c.Context(), payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

// GetGame handles fetching an archived game by ID.
func GetGame(c *fiber.Ctx) error {
	id := c.Params("id")

	repo := repository.NewGameRepository(c)
	game, err := repo.GetGame(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// GetGameStats returns statistics about the game archive.
func GetGameStats(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)
	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
