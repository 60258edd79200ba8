package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"fastrinth/internal/batch"
	"fastrinth/internal/config"
	"fastrinth/internal/fetch"
	"fastrinth/internal/logx"
	"fastrinth/internal/modrinth"
	"fastrinth/internal/summary"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file (optional)")
	flag.Parse()

	logx.Setup("info", "json")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logx.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := os.MkdirAll(cfg.ModsDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.ModsDir).Msg("create mods directory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := modrinth.NewClient(cfg.APIBaseURL, cfg.Token, modrinth.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxDelay:    cfg.Retry.MaxDelay,
		Statuses:    cfg.Retry.Statuses,
	})
	fetcher := fetch.New(cfg.ModsDir, fetch.Options{
		RetryMax:     cfg.Download.RetryMax,
		RetryWaitMin: cfg.Download.RetryWaitMin,
		RetryWaitMax: cfg.Download.RetryWaitMax,
		ShowProgress: cfg.Download.ShowProgress,
	})
	driver := batch.NewDriver(client, fetcher, cfg.Loader, cfg.GameVersion)

	log.Info().
		Int("mods", len(cfg.Mods)).
		Str("loader", cfg.Loader).
		Str("game_version", cfg.GameVersion).
		Str("dir", cfg.ModsDir).
		Str("token", logx.Secret(cfg.Token)).
		Msg("starting batch")

	results := driver.Run(ctx, cfg.Mods)
	summary.Summarize(results).Log()
	// Partial failure is reported in the summary only; the process
	// exits zero either way.
}
