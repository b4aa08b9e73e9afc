package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelclock/config"
	"travelclock/di"
	"travelclock/internal/cli"
	"travelclock/shared/logger"

	"github.com/rs/zerolog/log"
)

const flushTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger(os.Stderr)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	planner := di.InitializePlanner(cli.NewSurveyPrompter(), os.Stdout)

	runErr := planner.Run(ctx)

	flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := planner.Close(flushCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Planner stopped")
	}
}
