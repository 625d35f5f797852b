package main

import (
	"flag"
	"os"

	"github.com/emrek/registra/internal/bootstrap"
	"github.com/emrek/registra/internal/config"
	"github.com/emrek/registra/internal/pkg/logger"
	"github.com/emrek/registra/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	app, err := bootstrap.NewApplication(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.Close()

	if err := server.Run(app); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
