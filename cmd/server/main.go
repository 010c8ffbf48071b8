package main

import (
	"log"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal"
	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
