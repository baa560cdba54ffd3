package main

import (
	"os"

	"github.com/yigit/minilms/internal/pkg/logger"
	"github.com/yigit/minilms/internal/server"
)

// @title Mini LMS API
// @version 1.0
// @description API for managing courses, students, and enrolments in a Mini LMS

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
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
