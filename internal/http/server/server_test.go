package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webbasics/internal/http/middleware"
	"webbasics/internal/logging"
)

func TestNewApp(t *testing.T) {
	reg := prometheus.NewRegistry()
	app, err := NewApp(Options{Name: "test", Strict: true, Registry: reg})
	require.NoError(t, err)

	app.Get("/about", func(c *fiber.Ctx) error {
		return c.SendString("about")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/about", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/about/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "strict routing")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "http_requests_total")
	assert.Contains(t, names, "http_request_duration_seconds")
}

func TestNewApp_DuplicateRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewApp(Options{Name: "a", Registry: reg})
	require.NoError(t, err)

	_, err = NewApp(Options{Name: "a", Registry: reg})
	assert.ErrorContains(t, err, "register request metrics")
}

func TestNewApp_WithTracing(t *testing.T) {
	app, err := NewApp(Options{Name: "traced", Tracing: true})
	require.NoError(t, err)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsApp(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "demo_total", Help: "demo"})
	reg.MustRegister(c)
	c.Add(3)

	resp, err := MetricsApp(reg).Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "demo_total 3")
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("up") })
	addr := freeAddr(t)

	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, logging.New(&logs, time.UTC), Listener{Name: "test", App: app, Addr: addr})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "up"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	err = Run(context.Background(), logging.New(io.Discard, time.UTC), Listener{Name: "test", App: app, Addr: busy.Addr().String()})

	assert.ErrorContains(t, err, "test listen on")
}
