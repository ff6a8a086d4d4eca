package handler

import "github.com/gofiber/fiber/v2"

const (
	WelcomeText = "Welcome to My Node Server"
	AboutText   = "About Us: This server was built on Fiber to demonstrate basic routing and fire-and-forget file logging."
)

// RegisterLogServerRoutes answers "/" and "/about" for any method and 404s
// everything else. The app must route strictly and case-sensitively for the
// matches to be exact.
func RegisterLogServerRoutes(app fiber.Router) {
	app.All("/", func(c *fiber.Ctx) error {
		return sendText(c, fiber.StatusOK, WelcomeText)
	})

	app.All("/about", func(c *fiber.Ctx) error {
		return sendText(c, fiber.StatusOK, AboutText)
	})

	app.Use(func(c *fiber.Ctx) error {
		return sendText(c, fiber.StatusNotFound, NotFoundText)
	})
}
