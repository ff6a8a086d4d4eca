package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"webbasics/internal/config"
	"webbasics/internal/http/handler"
	"webbasics/internal/http/middleware"
	"webbasics/internal/http/server"
	"webbasics/internal/logging"
	"webbasics/internal/otel"
)

func main() {
	cfg := config.Load()
	logger := logging.Default(cfg.Location()).With("webserver")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	var reg *prometheus.Registry
	if cfg.MetricsPort != "" {
		reg = prometheus.NewRegistry()
	}

	app, err := server.NewApp(server.Options{
		Name:     "webserver",
		Registry: reg,
		Tracing:  cfg.Tracing.Enabled,
	})
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	// Pipeline: console log, static files, fixed routes, 404 page.
	app.Use(middleware.Logger())
	handler.RegisterWebRoutes(app, cfg.PublicDir, os.Stdout)

	logger.Info("Server running on http://localhost:"+cfg.Port, map[string]any{
		"public_dir": cfg.PublicDir,
	})

	listeners := []server.Listener{{Name: "webserver", App: app, Addr: cfg.Addr()}}
	if reg != nil {
		listeners = append(listeners, server.Listener{Name: "metrics", App: server.MetricsApp(reg), Addr: ":" + cfg.MetricsPort})
	}

	if err := server.Run(ctx, logger, listeners...); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
