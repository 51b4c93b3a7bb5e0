package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/app"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/cli"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/config"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	// stdout carries JSON; logs go to stderr at WARN unless LOG_LEVEL is set.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "WARN"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.SetDefault(logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	))

	a, err := app.New(cfg, time.Now)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(&cli.App{
		Health:  a.Health,
		Reviews: a.Reviews,
		Now:     time.Now,
	}).ExecuteContext(ctx)
}
