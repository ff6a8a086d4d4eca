package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

const (
	AboutHTML = `
        <h1>About Our Fiber Server</h1>
        <p>This page demonstrates basic routing and middleware.
        It's a step up from a bare net/http handler!</p>
        <p>Return to <a href="/">Home</a> or go to <a href="/contact">Contact</a>.</p>
    `
	ContactHTML = `
        <h1>Contact Us</h1>
        <p>Reach out to us at: contact@fiber-demo.dev</p>
        <p>Return to <a href="/">Home</a> or go to <a href="/about">About</a>.</p>
    `
)

// RegisterWebRoutes builds the routed server pipeline after any logging
// middleware: static files from publicDir, the fixed pages, then the 404 page.
// Every step either answers or hands off with c.Next, so no request can stall.
func RegisterWebRoutes(app *fiber.App, publicDir string, out io.Writer) {
	app.Static("/", publicDir, fiber.Static{Index: "index.html"})

	app.Get("/", Home(publicDir, out))
	app.Get("/about", func(c *fiber.Ctx) error {
		return sendHTML(c, fiber.StatusOK, AboutHTML)
	})
	app.Get("/contact", func(c *fiber.Ctx) error {
		return sendHTML(c, fiber.StatusOK, ContactHTML)
	})

	app.Use(NotFoundPage(publicDir))
}

// Home is only reached when the static step did not answer "/". It serves
// index.html if it has appeared since, otherwise it falls through.
func Home(publicDir string, out io.Writer) fiber.Handler {
	index := filepath.Join(publicDir, "index.html")
	return func(c *fiber.Ctx) error {
		if !fileExists(index) {
			return c.Next()
		}
		fmt.Fprintln(out, "Serving homepage (index.html)")
		return c.SendFile(index)
	}
}

// NotFoundPage answers 404 with publicDir/404.html, or with the plain-text
// 404 body when that page is missing.
func NotFoundPage(publicDir string) fiber.Handler {
	page := filepath.Join(publicDir, "404.html")
	return func(c *fiber.Ctx) error {
		if !fileExists(page) {
			return sendText(c, fiber.StatusNotFound, NotFoundText)
		}
		return c.Status(fiber.StatusNotFound).SendFile(page)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
