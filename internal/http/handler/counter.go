package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"webbasics/internal/counter"
)

// RequestCount bumps cnt on every request, whatever the path or method, and
// reports the new value.
func RequestCount(cnt *counter.Counter, port string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n := cnt.Next()
		trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.Int64("counter.value", n))

		return sendText(c, fiber.StatusOK,
			fmt.Sprintf("Request Count: %d\nVisit http://localhost:%s/ in your browser.", n, port))
	}
}
