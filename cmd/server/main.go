package main

import (
	"log"
	"log/slog"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg, services := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	err := app.Listen(address)

	if closeErr := services.Close(); closeErr != nil {
		slog.Error("Failed to close services", "error", closeErr)
	}

	if err != nil {
		log.Fatal(err)
	}
}
