package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"webbasics/internal/config"
	"webbasics/internal/counter"
	"webbasics/internal/http/handler"
	"webbasics/internal/http/server"
	"webbasics/internal/logging"
	"webbasics/internal/otel"
)

func main() {
	cfg := config.Load()
	logger := logging.Default(cfg.Location()).With("counter")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, logger)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	cnt := counter.New(int64(cfg.CounterStart))

	var reg *prometheus.Registry
	if cfg.MetricsPort != "" {
		reg = prometheus.NewRegistry()
		if err := cnt.Register(reg); err != nil {
			log.Fatalf("failed to register counter gauge: %v", err)
		}
	}

	app, err := server.NewApp(server.Options{
		Name:     "counter",
		Registry: reg,
		Tracing:  cfg.Tracing.Enabled,
	})
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}
	app.Use(handler.RequestCount(cnt, cfg.Port))

	out, colored := logging.Terminal()
	logging.Banner(out, colored,
		logging.BannerLine{Style: logging.BlackOnGreen, Text: "\n\n--- SERVER RESTARTED ---"},
		logging.BannerLine{Style: logging.Cyan, Text: fmt.Sprintf("Server is running at http://localhost:%s/", cfg.Port)},
		logging.BannerLine{Style: logging.Yellow, Text: fmt.Sprintf("Current Counter Value on Startup: %d", cnt.Value())},
		logging.BannerLine{Style: logging.Gray, Text: "\n* Restart the process to reset the counter *"},
	)

	listeners := []server.Listener{{Name: "counter", App: app, Addr: cfg.Addr()}}
	if reg != nil {
		listeners = append(listeners, server.Listener{Name: "metrics", App: server.MetricsApp(reg), Addr: ":" + cfg.MetricsPort})
	}

	if err := server.Run(ctx, logger, listeners...); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
