package middleware

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"webbasics/internal/model"
)

// Clock returns the current time.
type Clock func() time.Time

// RecordSink accepts request records without blocking.
type RecordSink interface {
	Record(rec model.RequestRecord)
}

// requestRecord snapshots the request. Fiber reuses its buffers once the
// handler returns, so every string is copied.
func requestRecord(c *fiber.Ctx, now Clock) model.RequestRecord {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return model.NewRequestRecord(
		now(),
		utils.CopyString(c.Method()),
		utils.CopyString(c.OriginalURL()),
		rid,
	)
}

// Logger prints one console line per request to stdout and passes control on.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.Now)
}

// LoggerWithWriter prints "[<timestamp>] Request: <METHOD> <url>" to w before
// calling the next handler. It never ends the request itself.
func LoggerWithWriter(w io.Writer, now Clock) fiber.Handler {
	var mu sync.Mutex
	return func(c *fiber.Ctx) error {
		line := requestRecord(c, now).ConsoleLine()
		mu.Lock()
		fmt.Fprintln(w, line)
		mu.Unlock()

		return c.Next()
	}
}

// Recorder hands a record of every request to sink and passes control on
// without waiting for the record to be written anywhere.
func Recorder(sink RecordSink, now Clock) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sink.Record(requestRecord(c, now))
		return c.Next()
	}
}
