package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"traincards/internal/config"
	"traincards/internal/database"
	"traincards/internal/logging"
	tracing "traincards/internal/otel"
	"traincards/internal/repository/postgres"
	"traincards/internal/service"
)

// @title Train Cards API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.Init(cfg.Log, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, "traincards", log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	// The pool lives for the whole process and is injected below.
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	recRepo := postgres.NewRecordPostgres(db)
	recSvc := service.NewRecordService(recRepo, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "train_data"),
	)

	app, err := newApp(cfg, log, db, recSvc, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build http app")
	}

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()
	log.Info().Str("addr", addr).Str("app_host", cfg.AppHost).Msg("server started")

	exitCode := 0
	select {
	case err := <-listenErr:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
			exitCode = 1
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
	}

	// Drain in-flight requests before the pool goes away.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("db close")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
	log.Info().Msg("server stopped")

	if exitCode != 0 {
		cancel()
		stop()
		os.Exit(exitCode)
	}
}
