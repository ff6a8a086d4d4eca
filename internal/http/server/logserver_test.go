package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webbasics/internal/http/handler"
	"webbasics/internal/http/middleware"
	"webbasics/internal/reqlog"
)

func TestLogServer_OneLinePerRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	recorder := reqlog.NewRecorder(nil, []reqlog.Writer{reqlog.NewFileWriter(path)})

	app, err := NewApp(Options{Name: "logserver", Strict: true})
	require.NoError(t, err)
	clock := func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 123_000_000, time.UTC) }
	app.Use(middleware.Recorder(recorder, clock))
	handler.RegisterLogServerRoutes(app)

	cases := []struct {
		method string
		target string
		status int
		body   string
	}{
		{http.MethodGet, "/", http.StatusOK, handler.WelcomeText},
		{http.MethodGet, "/about", http.StatusOK, handler.AboutText},
		{http.MethodPost, "/about?x=1", http.StatusOK, handler.AboutText},
		{http.MethodGet, "/about/", http.StatusNotFound, handler.NotFoundText},
		{http.MethodGet, "/xyz", http.StatusNotFound, handler.NotFoundText},
	}

	const rounds = 40
	var want []string
	for i := 0; i < rounds; i++ {
		for _, tc := range cases {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.target, nil))
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			resp.Body.Close()

			require.Equal(t, tc.status, resp.StatusCode, "%s %s", tc.method, tc.target)
			require.Equal(t, tc.body, string(body))
			want = append(want, fmt.Sprintf("[2024-05-01T09:30:00.123Z] Method: %s, URL: %s", tc.method, tc.target))
		}
	}

	require.NoError(t, recorder.Close(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, got, rounds*len(cases))
	assert.Equal(t, want, got)
}
