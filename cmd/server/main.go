package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/api"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/app"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/config"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/jobs"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/worker"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("ExamPilot Mastery Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("recompute_worker_count=%d", cfg.RecomputeWorkerCount)
	log.Debug("recompute_queue_size=%d", cfg.RecomputeQueueSize)
	log.Debug("recompute_concurrency=%d", cfg.RecomputeConcurrency)
	log.Debug("tuning_path=%s", cfg.TuningPath)
	log.Debug("metrics_enabled=%t", cfg.MetricsEnabled)

	// Open database and wire services
	a, err := app.New(cfg, time.Now)
	if err != nil {
		log.Error("failed to initialize: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		a.Close()
	}()

	// Initialize worker pools
	healthPool := worker.NewPool("health", cfg.RecomputeWorkerCount, cfg.RecomputeQueueSize)
	weeklyPool := worker.NewPool("weekly", cfg.RecomputeWorkerCount, cfg.RecomputeQueueSize)

	srv := &api.Server{
		HealthService:  a.Health,
		WeeklyService:  a.Reviews,
		JobQueue:       jobs.NewWorkerQueue(healthPool, weeklyPool, a.Health, a.Reviews, time.Now),
		DB:             a.DB,
		MetricsEnabled: cfg.MetricsEnabled,
		Now:            time.Now,
	}

	ctx, cancel := context.WithCancel(context.Background())
	healthPool.Start(ctx)
	weeklyPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Drain queued jobs before cancelling their context
	log.Debug("stopping health pool")
	healthPool.Stop()
	log.Debug("stopping weekly pool")
	weeklyPool.Stop()
	cancel()

	log.Info("===========================================")
	log.Info("ExamPilot Mastery Server Stopped")
	log.Info("===========================================")
}
