package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pickomino/communication/server"
	"pickomino/config"
	"pickomino/experiments"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "serve", "Run mode: serve or experiment")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Logging)

	switch *mode {
	case "serve":
		srv := server.New()
		if err := srv.Start(cfg.Server.Addr()); err != nil {
			log.Fatal().Err(err).Msg("advice server failed")
		}
	case "experiment":
		exp := cfg.Experiment
		if err := experiments.RunModeComparison(exp.Games, exp.Turns, exp.Seed); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
