package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"webbasics/internal/config"
	"webbasics/internal/database"
	"webbasics/internal/http/handler"
	"webbasics/internal/http/middleware"
	"webbasics/internal/http/server"
	"webbasics/internal/logging"
	"webbasics/internal/otel"
	"webbasics/internal/repository/postgres"
	"webbasics/internal/reqlog"
)

func main() {
	cfg := config.Load()
	logger := logging.Default(cfg.Location()).With("logserver")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	writers := []reqlog.Writer{reqlog.NewFileWriter(cfg.RequestLogFile)}

	// Postgres is an optional second sink for the request log.
	if cfg.Database.Enabled() {
		db, err := database.OpenRequestLog(ctx, cfg.Database, logger)
		if err != nil {
			log.Fatalf("failed to open request log database: %v", err)
		}
		defer db.Close()

		repo := postgres.NewRequestLogPostgres(db)
		if n, err := repo.CountSince(ctx, time.Now().Add(-24*time.Hour)); err == nil {
			logger.Info("request_log_db_ready", map[string]any{"records_last_24h": n})
		}
		writers = append(writers, reqlog.NewRepositoryWriter(repo))
	}

	recorder := reqlog.NewRecorder(reqlog.LogErrors(logger), writers,
		reqlog.WithWriteTimeout(cfg.RequestWriteTimeout()))

	var reg *prometheus.Registry
	if cfg.MetricsPort != "" {
		reg = prometheus.NewRegistry()
		if err := recorder.Register(reg); err != nil {
			log.Fatalf("failed to register request log metrics: %v", err)
		}
	}

	app, err := server.NewApp(server.Options{
		Name:     "logserver",
		Strict:   true,
		Registry: reg,
		Tracing:  cfg.Tracing.Enabled,
	})
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}
	app.Use(middleware.Recorder(recorder, time.Now))
	handler.RegisterLogServerRoutes(app)

	logger.Info("Server is running at http://localhost:"+cfg.Port+"/", map[string]any{
		"request_log_file": cfg.RequestLogFile,
		"database_sink":    cfg.Database.Enabled(),
	})

	listeners := []server.Listener{{Name: "logserver", App: app, Addr: cfg.Addr()}}
	if reg != nil {
		listeners = append(listeners, server.Listener{Name: "metrics", App: server.MetricsApp(reg), Addr: ":" + cfg.MetricsPort})
	}

	runErr := server.Run(ctx, logger, listeners...)

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := recorder.Close(flushCtx); err != nil {
		logger.Error("request_log_flush_failed", err, nil)
	}

	if runErr != nil {
		log.Fatalf("server error: %v", runErr)
	}
}
