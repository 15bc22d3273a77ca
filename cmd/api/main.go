package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campushire/placementhub/internal/pkg/logger"
	"github.com/campushire/placementhub/internal/server"
)

// @title PlacementHub API
// @version 1.0
// @description API for the college placement management portal

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Load .env before config reads the environment. A missing file is fine.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
