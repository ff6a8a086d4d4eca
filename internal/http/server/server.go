// Package server builds the fiber apps shared by every program and runs them
// until their context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"webbasics/internal/http/handler"
	"webbasics/internal/http/middleware"
	"webbasics/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Options configures NewApp.
type Options struct {
	// Name labels metrics and spans.
	Name string
	// Strict turns on strict and case-sensitive routing, so "/about/" and
	// "/About" are different paths from "/about".
	Strict bool
	// Registry receives request metrics; nil disables them.
	Registry *prometheus.Registry
	// Tracing adds the otelfiber middleware.
	Tracing bool
}

// NewApp returns a fiber app with the shared error handler and middleware
// installed: tracing, request ID, then metrics.
func NewApp(opts Options) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               opts.Name,
		ErrorHandler:          handler.ErrorHandler(),
		StrictRouting:         opts.Strict,
		CaseSensitive:         opts.Strict,
		DisableStartupMessage: true,
	})

	if opts.Tracing {
		app.Use(otelfiber.Middleware())
	}
	app.Use(middleware.RequestID())

	if opts.Registry != nil {
		prom, err := middleware.NewPrometheusMiddleware(opts.Registry, opts.Name)
		if err != nil {
			return nil, fmt.Errorf("register request metrics: %w", err)
		}
		app.Use(prom.Handler())
	}

	return app, nil
}

// MetricsApp serves the contents of gatherer at GET /metrics.
func MetricsApp(gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return app
}

// Listener pairs an app with the address it listens on.
type Listener struct {
	Name string
	App  *fiber.App
	Addr string
}

// Run serves every listener until ctx is done or one of them fails, then
// shuts all of them down. It returns the first listen error, if any.
func Run(ctx context.Context, log *logging.Logger, listeners ...Listener) error {
	errCh := make(chan error, len(listeners))
	for _, l := range listeners {
		go func(l Listener) {
			log.Info("server_listening", map[string]any{"server": l.Name, "addr": l.Addr})
			if err := l.App.Listen(l.Addr); err != nil {
				errCh <- fmt.Errorf("%s listen on %s: %w", l.Name, l.Addr, err)
			}
		}(l)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	var shutdownErrs []error
	for _, l := range listeners {
		if err := l.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
			shutdownErrs = append(shutdownErrs, fmt.Errorf("%s shutdown: %w", l.Name, err))
		}
	}
	log.Info("server_stopped", nil)

	return errors.Join(append([]error{runErr}, shutdownErrs...)...)
}
