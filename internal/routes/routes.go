package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/routes/api"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/routes/version"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/routes/ws"
)

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve websocket
	ws.SetupRoutes(app)
}
