package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/middleware"
)

func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())
	apiGroup.Post("/analysis", Analyze)
	apiGroup.Post("/games", SaveGame)
	apiGroup.Get("/games/stats", GetGameStats)
	apiGroup.Get("/games/:id", GetGame)
}
