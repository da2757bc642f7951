package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/config"
	"github.com/Yogesh-MG/inventory-os/internal/infra"
	"github.com/Yogesh-MG/inventory-os/internal/router"
	"github.com/Yogesh-MG/inventory-os/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Async infrastructure — the worker pool mails out critical stock alerts
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	pool := worker.NewPool(rdb)
	pool.Register(worker.QueueAlertEmail, worker.NewAlertEmailWorker(mailer, cfg.AlertEmailTo))
	pool.Start(ctx, cfg.WorkerPoolSize)

	// Analyzer sidecar client behind a circuit breaker
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	analyzer := infra.NewAnalyzerClient(cfg.AnalyzerURL, time.Duration(cfg.AnalyzerTimeoutSeconds)*time.Second, cb)

	r := router.New(cfg, db, rdb, analyzer, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inventory backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
