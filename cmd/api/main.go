package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/api"
	"github.com/SimoKiihamaki/marketprompt/internal/config"
	"github.com/SimoKiihamaki/marketprompt/internal/logging"
)

func main() {
	loaded := config.LoadWithWarnings()
	cfg := loaded.Config
	logger := logging.New(os.Stderr, cfg.LogLevel)
	for _, w := range loaded.Warnings {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rate, burst := cfg.RateLimit()
	deps := api.Dependencies{
		Logger:      logger,
		RateLimiter: api.NewRateLimiter(rate, burst),
	}
	deps.RateLimiter.CleanupRoutine(ctx, api.DefaultCleanupInterval)

	server := api.NewServer(api.Config{Addr: cfg.API.Addr}, deps)
	if err := server.Run(ctx, 5*time.Second); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
